package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jsphweid/triadex/catalog"
	"github.com/jsphweid/triadex/fretboard"
	"github.com/jsphweid/triadex/midi"
	"github.com/jsphweid/triadex/model"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	allEntries []model.CatalogEntry
	// voicings in allEntries by key, and the policy they were solved under
	byKey         map[string]model.CatalogEntry
	catalogPolicy fretboard.Policy
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves",
	Long:  `Serves voicings over HTTP.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		LoadServeFiles()
		logger.Info("listening", zap.String("addr", cfg.ListenAddr))
		return http.ListenAndServe(cfg.ListenAddr, NewRouter())
	},
}

// LoadServeFiles loads the saved catalog, building it when none is saved.
func LoadServeFiles() {
	policy, entries, err := catalog.Load(cfg.IndexDir)
	if err != nil {
		logger.Info("no saved catalog, building one", zap.Error(err))
		policy = currentPolicy()
		entries = catalog.Build(policy)
	}
	useCatalog(policy, entries)
}

func useCatalog(policy fretboard.Policy, entries []model.CatalogEntry) {
	allEntries = entries
	byKey = catalog.Index(entries)
	catalogPolicy = policy
}

// lookupVoicing serves from the loaded catalog when the request's policy
// matches it and solves otherwise.
func lookupVoicing(input model.VoicingRequestBody) (model.Voicing, error) {
	root, q, sh, set, err := parseVoicingArgs(input.Root, input.Quality, input.Shape, input.Set)
	if err != nil {
		return model.Voicing{}, err
	}
	policy := policyFor(input.AllowOpen, input.Stretch)
	if policy.AllowOpen == catalogPolicy.AllowOpen && policy.Limit() == catalogPolicy.Limit() {
		if e, ok := byKey[model.VoicingKey(root, q, sh, set)]; ok && e.Err == "" {
			return e.Voicing, nil
		}
	}
	return fretboard.Solve(root, q, sh, set, policy)
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/voicing", HandleVoicing).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/catalog", HandleCatalog).Methods(http.MethodGet)
	return cors.Default().Handler(router)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("could not write response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func readVoicingRequest(r *http.Request) (model.VoicingRequestBody, error) {
	var input model.VoicingRequestBody
	if r.Method == http.MethodPost {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			return input, err
		}
		return input, nil
	}

	q := r.URL.Query()
	input.Root = q.Get("root")
	input.Quality = q.Get("quality")
	input.Shape = q.Get("shape")
	input.Set = q.Get("set")
	var err error
	if input.AllowOpen, err = parseFlag(q.Get("allow_open")); err != nil {
		return input, fmt.Errorf("allow_open: %w", err)
	}
	if input.Stretch, err = parseFlag(q.Get("stretch")); err != nil {
		return input, fmt.Errorf("stretch: %w", err)
	}
	return input, nil
}

// parseFlag reads an optional boolean query parameter; empty means false.
func parseFlag(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: %q is not a boolean", model.ErrInvalidInput, s)
	}
	return b, nil
}

func HandleVoicing(w http.ResponseWriter, r *http.Request) {
	input, err := readVoicingRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	v, err := lookupVoicing(input)
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err)
		return
	case errors.Is(err, model.ErrUnsolvableVoicing):
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	logger.Debug("voicing", zap.String("key", v.Key()))
	writeJSON(w, http.StatusOK, model.VoicingResponse{
		Key:     v.Key(),
		Span:    v.Span(),
		Voicing: v,
		Keys:    midi.SoundingKeys(v),
	})
}

func HandleCatalog(w http.ResponseWriter, r *http.Request) {
	res := model.CatalogResponse{Total: len(allEntries), Unsolvable: []string{}, Voicings: []model.Voicing{}}
	for _, e := range allEntries {
		if e.Err != "" {
			res.Unsolvable = append(res.Unsolvable, e.Key)
			continue
		}
		res.Voicings = append(res.Voicings, e.Voicing)
	}
	writeJSON(w, http.StatusOK, res)
}
