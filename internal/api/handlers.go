package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/matzehuels/cladegram/pkg/buildinfo"
	cerrors "github.com/matzehuels/cladegram/pkg/errors"
	"github.com/matzehuels/cladegram/pkg/newick"
	"github.com/matzehuels/cladegram/pkg/pipeline"
	"github.com/matzehuels/cladegram/pkg/render/ascii"
	"github.com/matzehuels/cladegram/pkg/treeio"
)

// renderResponse is the body of a successful POST /v1/render.
type renderResponse struct {
	TreeHash  string            `json:"tree_hash"`
	Leaves    int               `json:"leaves"`
	Nodes     int               `json:"nodes"`
	Height    float64           `json:"height"`
	Artifacts map[string][]byte `json:"artifacts"`
	ParseHit  bool              `json:"parse_cache_hit"`
	RenderHit bool              `json:"render_cache_hit"`
}

// errorResponse is the body of any error status.
type errorResponse struct {
	Error  string `json:"error"`
	Code   string `json:"code,omitempty"`
	Offset int    `json:"offset,omitempty"` // Newick syntax errors only
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	if err := pipeline.ValidateLadderize(opts.Ladderize); err != nil {
		s.writeError(w, err)
		return
	}

	t, err := s.runner.Parse(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	t = s.runner.Transform(t, opts)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := treeio.WriteJSON(t, w); err != nil {
		s.logger.Error("write response", "error", err)
	}
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, renderResponse{
		TreeHash:  result.TreeHash,
		Leaves:    result.Stats.LeafCount,
		Nodes:     result.Stats.NodeCount,
		Height:    result.Stats.Height,
		Artifacts: result.Artifacts,
		ParseHit:  result.CacheInfo.ParseHit,
		RenderHit: result.CacheInfo.RenderHit,
	})
}

// writeError maps pipeline errors onto HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var syntaxErr *newick.SyntaxError
	if errors.As(err, &syntaxErr) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  syntaxErr.Error(),
			Code:   string(cerrors.ErrCodeInvalidNewick),
			Offset: syntaxErr.Offset,
		})
		return
	}

	if errors.Is(err, ascii.ErrNoLeaves) || errors.Is(err, ascii.ErrZeroHeight) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: err.Error(),
			Code:  string(cerrors.ErrCodeDegenerateTree),
		})
		return
	}

	code := cerrors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case cerrors.ErrCodeInvalidInput, cerrors.ErrCodeInvalidNewick,
		cerrors.ErrCodeInvalidWidth, cerrors.ErrCodeInvalidFormat,
		cerrors.ErrCodeInvalidPath:
		status = http.StatusBadRequest
	case cerrors.ErrCodeDegenerateTree:
		status = http.StatusUnprocessableEntity
	case cerrors.ErrCodeNotFound, cerrors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, errorResponse{
		Error: cerrors.UserMessage(err),
		Code:  string(code),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
