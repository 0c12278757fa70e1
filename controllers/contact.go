package controllers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// ContactController relays contact-form submissions to a hosted endpoint.
// The relay is fire-and-forget: the response is never inspected, so the
// submission counts as accepted once the request is dispatched without a
// transport error.
type ContactController struct {
	RelayURL string
	Client   *http.Client
	Log      zerolog.Logger
}

// NewContactController creates a new ContactController
func NewContactController(relayURL string, client *http.Client, log zerolog.Logger) *ContactController {
	if client == nil {
		client = http.DefaultClient
	}
	return &ContactController{RelayURL: relayURL, Client: client, Log: log}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}

// Submit validates and relays a contact-form payload
func (cc *ContactController) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "Invalid input: "+err.Error(), http.StatusBadRequest)
		return
	}

	if cc.RelayURL == "" {
		http.Error(w, "Contact form unavailable", http.StatusServiceUnavailable)
		return
	}

	form := url.Values{}
	form.Set("name", req.Name)
	form.Set("email", req.Email)
	form.Set("phone", req.Phone)
	form.Set("message", req.Message)

	resp, err := cc.Client.Post(cc.RelayURL, "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
	if err != nil {
		cc.Log.Error().Err(err).Msg("relaying contact form")
		http.Error(w, "Failed to submit form", http.StatusBadGateway)
		return
	}
	resp.Body.Close()

	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode("Thank you! Your message has been sent.")
}
