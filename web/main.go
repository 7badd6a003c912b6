package main

import (
	"flag"
	"log"
	"os"

	"rayscene/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	webServer := server.NewServer(*port)

	log.Printf("Scene preview server")
	log.Printf("POST a scene JSON to http://localhost:%d/api/render for a PNG preview", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
