package collab

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/logident/logident/classify"
	"github.com/logident/logident/extractpipe"
	"github.com/logident/logident/stats"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// rpcRequest is a minimal JSON-RPC 2.0 envelope; only the three methods
// named below are dispatched.
type rpcRequest struct {
	ID     interface{}     `json:"id"`
	Method string          `json:"method"`
	Params jsoniter.RawMessage `json:"params"`
}

type rpcResponse struct {
	ID     interface{} `json:"id"`
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// Dispatcher routes JSON-RPC-shaped requests onto the three exposed
// entry points: classify, process_file, extract.
type Dispatcher struct {
	Logger *zap.Logger
}

// NewDispatcher builds a Dispatcher bound to logger. A nil logger
// disables logging.
func NewDispatcher(logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Dispatcher{Logger: logger}
}

// Router builds the gorilla/mux router exposing the dispatcher at
// POST /rpc.
func (d *Dispatcher) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/rpc", d.handle).Methods(http.MethodPost)

	return r
}

func (d *Dispatcher) handle(w http.ResponseWriter, r *http.Request) {
	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, rpcResponse{Error: errors.Wrap(err, "decoding request").Error()})

		return
	}

	result, err := d.dispatch(req)
	if err != nil {
		d.Logger.Warn("rpc call failed", zap.String("method", req.Method), zap.Error(err))
		writeJSON(w, rpcResponse{ID: req.ID, Error: err.Error()})

		return
	}

	writeJSON(w, rpcResponse{ID: req.ID, Result: result})
}

func (d *Dispatcher) dispatch(req rpcRequest) (interface{}, error) {
	switch req.Method {
	case "classify":
		return d.classify(req.Params)
	case "process_file":
		return d.processFile(req.Params)
	case "extract":
		return d.extract(req.Params)
	default:
		return nil, errors.Errorf("unknown method %q", req.Method)
	}
}

type classifyParams struct {
	Value string `json:"value"`
}

func (d *Dispatcher) classify(raw jsoniter.RawMessage) (interface{}, error) {
	var p classifyParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, errors.Wrap(err, "decoding classify params")
	}

	return classify.Classify(p.Value), nil
}

type extractParams struct {
	Line    string   `json:"line"`
	Exclude []string `json:"exclude"`
}

func (d *Dispatcher) extract(raw jsoniter.RawMessage) (interface{}, error) {
	var p extractParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, errors.Wrap(err, "decoding extract params")
	}

	return classify.ExtractAll(p.Line, toSet(p.Exclude)), nil
}

type processFileParams struct {
	Path       string   `json:"path"`
	Limit      int64    `json:"limit"`
	Exclude    []string `json:"exclude"`
	Categories []string `json:"categories"`
	Sample     int64    `json:"sample"`
}

func (d *Dispatcher) processFile(raw jsoniter.RawMessage) (interface{}, error) {
	var p processFileParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, errors.Wrap(err, "decoding process_file params")
	}

	pipeline := extractpipe.New(d.Logger)

	result, err := pipeline.Run(context.Background(), extractpipe.FileSource{Path: p.Path}, extractpipe.Config{
		Limit:      p.Limit,
		SampleRate: p.Sample,
		Exclude:    toSet(p.Exclude),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "processing file %q", p.Path)
	}

	agg := stats.New()
	agg.AddLines(result.TotalLinesProcessed)

	categories := toSet(p.Categories)
	for _, f := range result.Findings {
		if len(categories) > 0 && !categories[f.Type] {
			continue
		}

		agg.AddFinding(f)
	}

	return agg.Report(p.Path), nil
}

func toSet(tags []string) map[string]bool {
	if len(tags) == 0 {
		return nil
	}

	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[t] = true
	}

	return set
}

func writeJSON(w http.ResponseWriter, resp rpcResponse) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	_ = enc.Encode(resp)
}
