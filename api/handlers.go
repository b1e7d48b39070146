package api

import (
	"net/http"

	"github.com/lookbusy1344/bigint/bigint"
)

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessions.CreateSession()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, SessionCreateResponse{
		SessionID: session.ID,
		CreatedAt: session.CreatedAt,
	})
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, SessionListResponse{Sessions: s.sessions.ListSessions()})
}

func (s *Server) handleGetSessionStatus(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	regs := make(map[string]string, len(session.Calc.Registers))
	for name, v := range session.Calc.Registers {
		regs[name] = v.Text(session.Calc.Base)
	}

	writeJSON(w, http.StatusOK, SessionStatusResponse{
		SessionID: session.ID,
		CreatedAt: session.CreatedAt,
		Base:      baseName(session.Calc.Base),
		Registers: regs,
	})
}

func (s *Server) handleDestroySession(w http.ResponseWriter, r *http.Request, sessionID string) {
	if err := s.sessions.DestroySession(sessionID); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// handleEvaluate evaluates an expression within a session. When the
// request sets trace=true, and the server config enables streaming, each
// division/multiplication kernel step is broadcast over the websocket
// before the final result is returned and also broadcast as an
// EventTypeResult.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	var req EvaluateRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var tracer bigint.Tracer
	wantsTrace := req.Trace && (s.cfg == nil || s.cfg.Trace.StreamDivisionSteps || s.cfg.Trace.StreamMultiplySteps)
	if wantsTrace {
		tracer = &broadcastTracer{sessionID: sessionID, broadcaster: s.broadcaster}
	}

	result, err := session.Calc.ExecuteTraced(req.Expression, tracer)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.broadcaster.BroadcastResult(sessionID, req.Expression, result)
	writeJSON(w, http.StatusOK, EvaluateResponse{Result: result})
}

func baseName(b bigint.Base) string {
	switch b {
	case bigint.BIN:
		return "bin"
	case bigint.HEX:
		return "hex"
	default:
		return "dec"
	}
}
