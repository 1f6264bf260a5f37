package main

import (
	"flag"
	"log"
	"os"

	transcat "github.com/transit-tools/transport-catalogue"
	"github.com/transit-tools/transport-catalogue/config"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	configPath := flag.String("config", "", "optional YAML config file")
	inputPath := flag.String("input", "", "input document; stdin when empty")
	flag.Parse()

	transcat.InitLogging()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	input := os.Stdin
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			log.Fatalf("open input: %v", err)
		}
		defer f.Close()
		input = f
	}

	doc, err := transcat.LoadDocument(input)
	if err != nil {
		log.Fatalf("load document: %v", err)
	}
	handler, err := transcat.NewRequestHandlerFromDocument(doc, cfg)
	if err != nil {
		log.Fatalf("build catalogue: %v", err)
	}

	switch *mode {
	case "oneshot":
		if err := handler.ProcessStatRequests(doc, os.Stdout); err != nil {
			log.Fatalf("process stat requests: %v", err)
		}
	case "serve":
		transcat.StartServer(cfg.Server.Port, handler)
		transcat.HandleGracefulShutdown()
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}
