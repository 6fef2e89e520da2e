package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	api "gitlab.com/dirk.krummacker/addressbook/pkg/model"
)

// Usage example on the command line:
// > go run main.go -url=http://localhost:8080 edit n/Alex Yeoh p/91234567
func main() {
	urlPtr := flag.String("url", "http://localhost:8080", "base URL of the address book service")
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Println("usage: client [-url=URL] COMMAND...")
		os.Exit(2)
	}

	body, err := json.Marshal(api.CommandRequest{Command: strings.Join(flag.Args(), " ")})
	if err != nil {
		panic(err)
	}
	resBody, status, duration := sendRequest(http.MethodPost, *urlPtr+"/commands", bytes.NewReader(body))

	var response api.CommandResponse
	if err := json.Unmarshal(resBody, &response); err != nil {
		fmt.Println("could not unmarshal JSON", err)
		os.Exit(1)
	}
	fmt.Println(response.Message)
	fmt.Printf("(HTTP %d in %d µs)\n", status, duration/1000)
	if status != http.StatusOK {
		os.Exit(1)
	}
}

func sendRequest(method string, requestURL string, bodyReader io.Reader) ([]byte, int, int64) {
	req, err := http.NewRequest(method, requestURL, bodyReader)
	if err != nil {
		fmt.Println("could not create request", err)
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	before := time.Now().UnixNano()
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("error making http request", err)
		panic(err)
	}
	defer res.Body.Close()
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		fmt.Println("could not read response body", err)
		panic(err)
	}
	after := time.Now().UnixNano()
	return resBody, res.StatusCode, after - before
}
