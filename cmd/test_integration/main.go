package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	baseURL = "http://localhost:8080"
)

func main() {
	// Wait for server to start
	time.Sleep(2 * time.Second)

	fmt.Println("Starting Smoke Test...")

	// 1. Health
	fmt.Println("1. Checking health...")
	if !sendRequest("GET", "/health", nil) {
		fmt.Println("FAILED: Health check")
		os.Exit(1)
	}
	fmt.Println("PASSED: Health check")

	// 2. Chat: greeting, question, nonsense
	fmt.Println("2. Chatting...")
	chats := []map[string]string{
		{"message": "hello"},
		{"message": "how do I download a status?"},
		{"message": "स्टेटस कैसे डाउनलोड करें"},
		{"message": "!!!??"},
	}
	for _, payload := range chats {
		if !sendRequest("POST", "/chat", payload) {
			fmt.Printf("FAILED: Chat %q\n", payload["message"])
			os.Exit(1)
		}
	}
	fmt.Println("PASSED: Chat")

	// 3. Match contract
	fmt.Println("3. Matching...")
	matchPayload := map[string]string{
		"query": "how to save a status",
		"lang":  "en",
	}
	if !sendRequest("POST", "/match", matchPayload) {
		fmt.Println("FAILED: Match")
		os.Exit(1)
	}
	fmt.Println("PASSED: Match")

	fmt.Println("Smoke Test Completed Successfully.")
}

func sendRequest(method, path string, payload interface{}) bool {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			fmt.Printf("Error marshaling payload: %v\n", err)
			return false
		}
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		return false
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return false
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	fmt.Printf("  %s %s -> %d: %s\n", method, path, resp.StatusCode, string(respBody))

	return resp.StatusCode == http.StatusOK
}
