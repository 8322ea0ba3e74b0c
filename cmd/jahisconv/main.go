// Command jahisconv is a local, zero-install web UI for decoding and
// encoding electronic medicine-notebook (JAHIS Ver. 2.3) files.
//
// Adapted from the teacher's cmd/web/main.go: same "double-click, auto
// port, auto-open browser" shape, same embedded single-page UI, but
// wired to the jahis package instead of the Taiwan HIS parser, and
// upgraded from bare fmt.Printf to structured zerolog logging.
package main

import (
	"embed"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	jahis "github.com/okkn/go-jahis-notebook"
)

//go:embed index.html
var indexHTML embed.FS

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	port := findAvailablePort()
	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(port))
	url := "http://" + addr

	mux := http.NewServeMux()
	mux.HandleFunc("/", handleIndex)
	mux.HandleFunc("/api/decode", handleDecode)
	mux.HandleFunc("/api/encode", handleEncode)

	server := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server stopped")
		}
	}()

	time.Sleep(100 * time.Millisecond)
	log.Info().Str("url", url).Msg("jahisconv ready")
	openBrowser(url)

	select {}
}

func findAvailablePort() int {
	for _, port := range []int{8080, 8081, 8082, 3000, 3001, 5000} {
		if isPortAvailable(port) {
			return port
		}
	}
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 8080
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func isPortAvailable(port int) bool {
	listener, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
	if err != nil {
		return false
	}
	listener.Close()
	return true
}

func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}

func handleIndex(w http.ResponseWriter, r *http.Request) {
	data, _ := indexHTML.ReadFile("index.html")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

// handleDecode accepts an uploaded notebook file (Shift-JIS or UTF-8)
// and returns its parsed structure as JSON.
func handleDecode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseMultipartForm(50 << 20); err != nil {
		sendError(w, "failed to read upload: "+err.Error())
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		sendError(w, "missing file: "+err.Error())
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		sendError(w, "failed to read file: "+err.Error())
		return
	}
	text, err := detectAndDecode(content)
	if err != nil {
		sendError(w, "failed to decode text: "+err.Error())
		return
	}
	notebook, err := jahis.ParseMedicineNotebook(text)
	if err != nil {
		log.Warn().Err(err).Msg("parse failed")
		sendError(w, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(notebook)
}

// encodeRequest is the JSON body for /api/encode: a notebook previously
// produced by /api/decode, or hand-constructed by a caller.
type encodeRequest struct {
	Notebook jahis.MedicineNotebook `json:"notebook"`
}

// handleEncode serializes a notebook structure back to JAHIS wire text,
// transcoded to Shift-JIS.
func handleEncode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req encodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "invalid request body: "+err.Error())
		return
	}
	text := req.Notebook.Serialize()
	shiftJIS, err := encodeShiftJIS(text)
	if err != nil {
		sendError(w, "failed to transcode to Shift-JIS: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(shiftJIS)
}

func sendError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(map[string]any{"success": false, "error": msg})
}

