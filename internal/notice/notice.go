// Package notice builds the "icons generated" payload sent to MQTT and
// webhook side channels.
package notice

import (
	"encoding/json"

	"github.com/Mavwarf/mkicons/internal/assets"
)

// Event is the event name carried by every notice.
const Event = "icons_generated"

// File is one icon entry in a Notice.
type File struct {
	Name   string `json:"name"`
	Size   int    `json:"size"`
	Bytes  int    `json:"bytes"`
	SHA256 string `json:"sha256"`
}

// Notice is the JSON payload published after a successful run.
type Notice struct {
	Event string `json:"event"`
	Dir   string `json:"dir"`
	Files []File `json:"files"`
}

// New builds the notice for the written results.
func New(dir string, results []assets.Result) Notice {
	n := Notice{Event: Event, Dir: dir, Files: make([]File, 0, len(results))}
	for _, r := range results {
		n.Files = append(n.Files, File{Name: r.Name, Size: r.Size, Bytes: r.Bytes, SHA256: r.SHA256})
	}
	return n
}

// JSON encodes the notice for results.
func JSON(dir string, results []assets.Result) ([]byte, error) {
	return json.Marshal(New(dir, results))
}
