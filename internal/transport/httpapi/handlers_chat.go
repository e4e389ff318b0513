package httpapi

import (
	"net/http"

	"agentcrm/internal/domain/crm"
)

func (s *Server) chatHistory(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Snapshot().ChatHistory)
}

type chatRequest struct {
	Message string `json:"message"`
}

// chatSend appends the user turn, proxies transcript plus message to the
// model, and appends the assistant turn. Tool calls requested by the model
// are returned to the caller for execution; the transcript only records
// that they were requested.
func (s *Server) chatSend(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Message == "" {
		writeError(w, r, http.StatusBadRequest, "message is required", nil)
		return
	}

	history := s.store.Snapshot().ChatHistory
	s.store.AppendChatMessage(crm.ChatMessage{
		ID:        s.newID("msg"),
		Role:      crm.ChatRoleUser,
		Content:   req.Message,
		Timestamp: s.now(),
	})

	reply, err := s.agent.Respond(r.Context(), history, req.Message)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "chat turn failed", err)
		return
	}

	s.store.AppendChatMessage(crm.ChatMessage{
		ID:                 s.newID("msg"),
		Role:               crm.ChatRoleModel,
		Content:            reply.Text,
		Timestamp:          s.now(),
		IsFunctionResponse: len(reply.FunctionCalls) > 0,
	})

	writeJSON(w, http.StatusOK, reply)
}

func (s *Server) chatClear(w http.ResponseWriter, _ *http.Request) {
	s.store.ClearChat()
	writeJSON(w, http.StatusOK, map[string]bool{"cleared": true})
}

func (s *Server) mailConnect(w http.ResponseWriter, r *http.Request) {
	ok, err := s.mail.Connect(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "mail connect failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"connected": ok})
}

type mailSendRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (s *Server) mailSend(w http.ResponseWriter, r *http.Request) {
	var req mailSendRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	sent, err := s.mail.SendEmail(r.Context(), req.To, req.Subject, req.Body)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"sent": sent})
}

func (s *Server) mailCheck(w http.ResponseWriter, r *http.Request) {
	inbound, err := s.mail.CheckEmails(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "mail check failed", err)
		return
	}
	writeJSON(w, http.StatusOK, inbound)
}
