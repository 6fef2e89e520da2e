package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"
)

// Usage example on the command line:
// > go run main.go -url=http://localhost:8080/persons -timeout=120
func main() {
	urlPtr := flag.String("url", "http://localhost:8080/persons", "the URL to poll")
	timeoutPtr := flag.Int("timeout", 300, "seconds to wait before giving up")
	flag.Parse()

	totalWaitTime := 0
	for {
		res, err := http.Get(*urlPtr)
		if err == nil {
			res.Body.Close()
			if res.StatusCode == http.StatusOK {
				fmt.Println(res.Status)
				break
			} else {
				fmt.Println(res.Status)
			}
		} else {
			fmt.Println(err)
		}
		if totalWaitTime >= *timeoutPtr {
			fmt.Printf("Service not available after %d seconds", totalWaitTime)
			fmt.Println()
			os.Exit(1)
		}
		totalWaitTime += 5
		fmt.Printf("Waiting %d seconds", totalWaitTime)
		fmt.Println()
		time.Sleep(5 * time.Second)
	}
}
