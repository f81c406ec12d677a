// Mock OMDb server for local development. Serves a small embedded catalog
// with the real API's envelope shapes: search via ?s= and ?page=, detail
// via ?i=, string totalResults and "Response":"True"/"False".
package main

import (
	_ "embed"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"
)

//go:embed data.json
var jsonData []byte

const pageSize = 10

type record struct {
	ImdbID  string `json:"imdbID"`
	Title   string `json:"Title"`
	Year    string `json:"Year"`
	Rated   string `json:"Rated"`
	Runtime string `json:"Runtime"`
	Type    string `json:"Type"`
	Poster  string `json:"Poster"`
	Plot    string `json:"Plot"`
}

type searchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

func main() {
	var catalog []record
	if err := json.Unmarshal(jsonData, &catalog); err != nil {
		log.Fatalf("[OMDb mock] bad data.json: %v", err)
	}

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		// Simulate network latency (50-200ms)
		time.Sleep(time.Duration(50+time.Now().UnixNano()%150) * time.Millisecond)

		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.URL.Query().Get("i") != "":
			writeDetail(w, r, catalog)
		case r.URL.Query().Get("s") != "":
			writeSearch(w, r, catalog)
		default:
			writeError(w, "Incorrect IMDb ID.")
		}

		log.Printf("[OMDb mock] %s %s", r.Method, r.URL.RequestURI())
	})

	log.Println("Mock OMDb server running on :8081")
	server := &http.Server{
		Addr:         ":8081",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}

func writeSearch(w http.ResponseWriter, r *http.Request, catalog []record) {
	query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("s")))

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	var matches []record
	for _, rec := range catalog {
		if strings.Contains(strings.ToLower(rec.Title), query) {
			matches = append(matches, rec)
		}
	}

	if len(matches) == 0 {
		writeError(w, "Movie not found!")
		return
	}

	start := (page - 1) * pageSize
	if start >= len(matches) {
		writeError(w, "Movie not found!")
		return
	}
	end := start + pageSize
	if end > len(matches) {
		end = len(matches)
	}

	items := make([]searchItem, 0, end-start)
	for _, rec := range matches[start:end] {
		items = append(items, searchItem{
			Title:  rec.Title,
			Year:   rec.Year,
			ImdbID: rec.ImdbID,
			Type:   rec.Type,
			Poster: rec.Poster,
		})
	}

	writeJSON(w, map[string]interface{}{
		"Search":       items,
		"totalResults": strconv.Itoa(len(matches)),
		"Response":     "True",
	})
}

func writeDetail(w http.ResponseWriter, r *http.Request, catalog []record) {
	id := r.URL.Query().Get("i")

	for _, rec := range catalog {
		if rec.ImdbID == id {
			writeJSON(w, map[string]interface{}{
				"Title":    rec.Title,
				"Year":     rec.Year,
				"Rated":    rec.Rated,
				"Runtime":  rec.Runtime,
				"Plot":     rec.Plot,
				"Poster":   rec.Poster,
				"Type":     rec.Type,
				"imdbID":   rec.ImdbID,
				"Response": "True",
			})
			return
		}
	}

	writeError(w, "Incorrect IMDb ID.")
}

func writeError(w http.ResponseWriter, msg string) {
	writeJSON(w, map[string]interface{}{
		"Response": "False",
		"Error":    msg,
	})
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[OMDb mock] write error: %v", err)
	}
}
