// Package server exposes the string generators over HTTP and websockets.
package server

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"sync/atomic"
	"syscall"

	rice "github.com/GeertJohan/go.rice"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/synacor/strgen/language"
	"github.com/synacor/strgen/strgen"
)

const (
	// MaxAmount is the most strings a single request may ask for
	MaxAmount = 1000

	// MaxLength is the longest letter sequence a single request may ask for
	MaxLength = 256
)

// ErrFileMode is returned for modes that would read files named by the client.
var ErrFileMode = errors.New("server: mode reads files and is not available")

// ErrTooMany is returned when amount or length exceed MaxAmount or MaxLength.
var ErrTooMany = errors.New("server: amount or length too large")

// GenerateRequest is a generation request, read from a query string or a web socket.
// A nil Amount or Length falls back to the default.
type GenerateRequest struct {
	Amount *int   `json:"amount,omitempty"`
	Length *int   `json:"length,omitempty"`
	Mode   string `json:"mode"`
	Next   string `json:"next"`
}

// GenerateResponse carries generated strings, or an error, back to the client.
type GenerateResponse struct {
	Strings []string `json:"strings,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// Config validates the request and turns it into a run configuration.
func (r *GenerateRequest) Config() (strgen.Config, error) {
	conf := strgen.NewConfig()
	conf.Mode = strgen.ParseMode(r.Mode)
	conf.Next = r.Next
	if r.Amount != nil {
		conf.Amount = *r.Amount
	}
	if r.Length != nil {
		conf.Length = *r.Length
	}

	if conf.Amount < 0 || conf.Length < 0 {
		return conf, strgen.ErrInvalidNumber
	}
	if conf.Mode.ReadsFiles() {
		return conf, ErrFileMode
	}
	if conf.Amount > MaxAmount || conf.Length > MaxLength {
		return conf, ErrTooMany
	}
	return conf, nil
}

// Server serves generated strings.
type Server struct {
	// accessed atomically, keep first for 64-bit alignment
	generated int64

	templates *template.Template
	debug     bool
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type indexTemplateValues struct {
	Modes     []string
	Languages []string
	MaxAmount int
	MaxLength int
}

func init() {
	viper.BindEnv("debug")
}

// New returns a new *Server object
func New(templatesBox *rice.Box) *Server {
	return &Server{
		templates: template.Must(template.New("index").Parse(templatesBox.MustString("index.html"))),
		debug:     viper.GetBool("debug"),
	}
}

// ServeMux returns a mux that can be used with the listen and server methods in net/http
func (s *Server) ServeMux() *http.ServeMux {
	m := http.NewServeMux()
	m.HandleFunc("/", s.indexHandler)
	m.HandleFunc("/generate", s.generateHandler)
	m.HandleFunc("/ws", s.wsHandler)
	return m
}

// Generated returns the number of strings served since start.
func (s *Server) Generated() int64 {
	return atomic.LoadInt64(&s.generated)
}

// indexHandler handles requests to /
func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	values := indexTemplateValues{
		MaxAmount: MaxAmount,
		MaxLength: MaxLength,
	}
	for _, m := range []strgen.Mode{strgen.RandomLetters, strgen.RandomLettersFromCustomAlphabet, strgen.RandomWord, strgen.CoupledWordsNouns, strgen.CoupledWordsNames} {
		values.Modes = append(values.Modes, m.String())
	}
	for name := range language.All {
		values.Languages = append(values.Languages, name)
	}
	sort.Strings(values.Languages)

	if err := s.templates.Execute(w, &values); err != nil {
		log.Errorf("could not render index: %v", err)
	}
}

// generateHandler handles requests to GET /generate
func (s *Server) generateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	req := &GenerateRequest{
		Mode: q.Get("mode"),
		Next: q.Get("next"),
	}
	for key, dst := range map[string]**int{"amount": &req.Amount, "length": &req.Length} {
		v := q.Get(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, &GenerateResponse{Error: strgen.ErrInvalidNumber.Error()})
			return
		}
		*dst = &n
	}

	res, status := s.generate(req)
	writeJSON(w, status, res)
}

// wsHandler handles requests to /ws
func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Errorf("could not upgrade connection: %v", err)
		return
	}

	client := NewClient(conn)
	defer client.CloseChannel()

	go client.WritePump()
	client.ReadPump(s)
}

// HandleWsRequest handles requests that came in from a web socket connection via Client
func (s *Server) HandleWsRequest(c *Client, r *GenerateRequest) {
	if s.debug {
		b, err := json.Marshal(r)
		if err != nil {
			log.Errorf("could not marshal JSON: %v", err)
		} else {
			log.WithFields(log.Fields{"client": c.RemoteAddr()}).Debugf("received message: %s", string(b))
		}
	}

	res, _ := s.generate(r)
	c.Send(res)
}

func (s *Server) generate(r *GenerateRequest) (*GenerateResponse, int) {
	conf, err := r.Config()
	if err != nil {
		return &GenerateResponse{Error: err.Error()}, http.StatusBadRequest
	}

	out, err := strgen.Generate(conf)
	if err != nil {
		log.WithFields(log.Fields{"mode": conf.Mode, "next": conf.Next}).Errorf("could not generate: %v", err)
		return &GenerateResponse{Error: err.Error()}, http.StatusInternalServerError
	}

	atomic.AddInt64(&s.generated, int64(len(out)))
	return &GenerateResponse{Strings: out}, http.StatusOK
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("could not write JSON: %v", err)
	}
}

// ListenForEvents waits for a shutdown signal. SIGUSR1 logs how many strings were served.
func (s *Server) ListenForEvents(done chan bool) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGTERM, syscall.SIGINT, syscall.SIGUSR1)

	for theSig := range sig {
		if theSig == syscall.SIGUSR1 {
			log.WithFields(log.Fields{"generated": s.Generated()}).Info("strings served")
			continue
		}

		log.Printf("Shut down.")
		done <- true
		return
	}
}
