package webs

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/syncs"
	"github.com/reusee/turing/tables"
	"github.com/reusee/turing/tmconfigs"
	"github.com/reusee/turing/words"
)

type Handler http.Handler

type CheckRequest struct {
	Word string `json:"word"`
}

type CheckResponse struct {
	Word         string   `json:"word"`
	Program      string   `json:"program"`
	Result       string   `json:"result"`
	Outcome      string   `json:"outcome"`
	Steps        int      `json:"steps"`
	Tape         []string `json:"tape"`
	Head         int      `json:"head"`
	State        string   `json:"state"`
	IsPalindrome bool     `json:"is_palindrome"`
}

type ProgramResponse struct {
	Program  string   `json:"program"`
	States   []string `json:"states"`
	Alphabet []string `json:"alphabet,omitempty"`
	Labels   struct {
		Start  string `json:"start"`
		Accept string `json:"accept"`
		Reject string `json:"reject"`
	} `json:"labels"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (Module) Handler(
	table *tables.Table,
	labels machines.Labels,
	newMachine tmconfigs.NewMachine,
	maxSteps tmconfigs.MaxSteps,
	maxConns tmconfigs.MaxConns,
	newSpan logs.NewSpan,
	logger logs.Logger,
) Handler {
	mux := http.NewServeMux()
	sem := syncs.NewSemaphore(int(maxConns))

	mux.HandleFunc("POST /check", func(w http.ResponseWriter, r *http.Request) {
		ctx, _ := newSpan(r.Context(), "")

		var req CheckRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error: "bad request: " + err.Error(),
			})
			return
		}
		word := words.Normalize(req.Word)
		if word == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error: "empty word",
			})
			return
		}

		if err := sem.Acquire(ctx); err != nil {
			logger.WarnContext(ctx, "check aborted", "error", logs.WrapSpan(ctx, err))
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{
				Error: err.Error(),
			})
			return
		}
		defer sem.Release()

		m := newMachine()
		if err := m.Load(word); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, machines.ErrInvalidSymbol) {
				status = http.StatusBadRequest
			}
			writeJSON(w, status, errorResponse{
				Error: err.Error(),
			})
			return
		}
		steps, outcome := m.Run(int(maxSteps))
		result := m.Result()

		logger.InfoContext(ctx, "check",
			"word", word,
			"program", table.Name(),
			"result", result,
			"steps", steps,
			"outcome", outcome,
		)

		writeJSON(w, http.StatusOK, CheckResponse{
			Word:         word,
			Program:      table.Name(),
			Result:       result.String(),
			Outcome:      outcome.String(),
			Steps:        steps,
			Tape:         m.Display(),
			Head:         m.Head(),
			State:        m.State().String(),
			IsPalindrome: result == machines.Accept,
		})
	})

	mux.HandleFunc("GET /program", func(w http.ResponseWriter, r *http.Request) {
		var resp ProgramResponse
		resp.Program = table.Name()
		resp.States = table.States()
		for _, s := range table.Alphabet() {
			resp.Alphabet = append(resp.Alphabet, s.String())
		}
		resp.Labels.Start = labels.Start
		resp.Labels.Accept = labels.Accept
		resp.Labels.Reject = labels.Reject
		writeJSON(w, http.StatusOK, resp)
	})

	mux.HandleFunc("GET /status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"program": table.Name(),
		})
	})

	return mux
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}
