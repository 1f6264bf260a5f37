/*
Package routing builds a time-weighted graph over the transit network and
answers best-route queries with human-readable itineraries.

Every stop owns two vertices: an arrival vertex (even id) and a departure
vertex (arrival+1). A fixed-weight wait edge connects arrival to departure;
ride edges connect the departure vertex of one stop to the arrival vertex
of a later stop on the same bus. A shortest path through this graph is
therefore an alternating wait-then-ride sequence, which translates
directly into itinerary segments.

Ride edges are only generated up to Settings.MaxRouteSpans hops ahead.
Without the bound a bus with N stops produces O(N²) edges; with it, at
most N·MaxRouteSpans. Longer single-bus trips remain reachable as chains
of shorter ride edges (the rider re-boards, paying the wait time again),
so the bound trades some directness for a much smaller graph without
cutting any stop off.

The graph is built once per (catalogue, settings) pair and is read-only
afterwards; queries share it freely across goroutines.
*/
package routing
