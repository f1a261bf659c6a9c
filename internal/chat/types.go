package chat

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ResponseType tags which scenario a bot response belongs to.
type ResponseType string

const (
	TypeConversation ResponseType = "CONVERSATION"
	TypeDiagnosis    ResponseType = "DIAGNOSIS"
	TypeAskLocation  ResponseType = "ASK_LOCATION_FOR_EXPERTS"
	TypeExpertList   ResponseType = "EXPERT_LIST"
)

// ResponseTypes lists every scenario tag in schema order.
var ResponseTypes = []ResponseType{TypeConversation, TypeDiagnosis, TypeAskLocation, TypeExpertList}

// Valid reports whether t is one of the four known scenario tags.
func (t ResponseType) Valid() bool {
	switch t {
	case TypeConversation, TypeDiagnosis, TypeAskLocation, TypeExpertList:
		return true
	}
	return false
}

// Confidence is the model's certainty about a diagnosis.
type Confidence string

const (
	ConfidenceHigh Confidence = "HIGH"
	ConfidenceLow  Confidence = "LOW"
)

// ExpertType classifies who employs an expert.
type ExpertType string

const (
	ExpertGovt    ExpertType = "GOVT"
	ExpertPrivate ExpertType = "PRIVATE"
	ExpertNGO     ExpertType = "NGO"
)

// DiagnosisData is a crop disease identification plus remediation advice.
type DiagnosisData struct {
	DiseaseName    string     `json:"disease_name"`
	Confidence     Confidence `json:"confidence"`
	CropDetected   string     `json:"crop_detected"`
	Explanation    string     `json:"explanation"`
	TreatmentSteps []string   `json:"treatment_steps"`
	PreventionTips []string   `json:"prevention_tips"`
	IsSafeOrganic  bool       `json:"is_safe_organic"`
}

// Clone returns a deep copy of d.
func (d DiagnosisData) Clone() DiagnosisData {
	out := d
	out.TreatmentSteps = append([]string(nil), d.TreatmentSteps...)
	out.PreventionTips = append([]string(nil), d.PreventionTips...)
	return out
}

// Expert is a local agricultural contact.
type Expert struct {
	Name    string     `json:"name"`
	Role    string     `json:"role"`
	Contact string     `json:"contact"`
	Address string     `json:"address"`
	Type    ExpertType `json:"type"`
}

// Provenance records how a diagnosis was assembled. It is kept for
// debugging and is not meant for display.
type Provenance struct {
	ModelEngine string `json:"model_engine"`
	DatasetRef  string `json:"dataset_ref"`
	Grounded    bool   `json:"grounded"`
}

// BotResponse is the structured reply produced for every model turn.
type BotResponse struct {
	Type             ResponseType   `json:"type"`
	TextResponse     string         `json:"text_response"`
	DiagnosisData    *DiagnosisData `json:"diagnosis_data,omitempty"`
	ExpertsData      []Expert       `json:"experts_data,omitempty"`
	LanguageDetected string         `json:"language_detected,omitempty"`
	Provenance       *Provenance    `json:"provenance,omitempty"`
}

// Clone returns a copy of r that shares no payload memory with it.
func (r BotResponse) Clone() BotResponse {
	out := r
	if r.DiagnosisData != nil {
		d := r.DiagnosisData.Clone()
		out.DiagnosisData = &d
	}
	if r.ExpertsData != nil {
		out.ExpertsData = append([]Expert(nil), r.ExpertsData...)
	}
	if r.Provenance != nil {
		p := *r.Provenance
		out.Provenance = &p
	}
	return out
}

// ErrPayloadMismatch is returned by Validate when the payload present does
// not match the response type.
var ErrPayloadMismatch = errors.New("payload does not match response type")

// Validate checks the scenario contract: a known type, a non-empty text
// response and exactly the payload the type calls for.
func (r *BotResponse) Validate() error {
	if !r.Type.Valid() {
		return fmt.Errorf("unknown response type %q", r.Type)
	}
	if strings.TrimSpace(r.TextResponse) == "" {
		return errors.New("empty text_response")
	}

	hasDiagnosis := r.DiagnosisData != nil
	hasExperts := len(r.ExpertsData) > 0

	switch r.Type {
	case TypeDiagnosis:
		if !hasDiagnosis || hasExperts {
			return fmt.Errorf("%s: %w", r.Type, ErrPayloadMismatch)
		}
		if strings.TrimSpace(r.DiagnosisData.DiseaseName) == "" {
			return fmt.Errorf("%s: missing disease_name", r.Type)
		}
	case TypeExpertList:
		if !hasExperts || hasDiagnosis {
			return fmt.Errorf("%s: %w", r.Type, ErrPayloadMismatch)
		}
	default:
		if hasDiagnosis || hasExperts {
			return fmt.Errorf("%s: %w", r.Type, ErrPayloadMismatch)
		}
	}
	return nil
}

// Role identifies who authored a message.
type Role string

const (
	RoleUser  Role = "USER"
	RoleModel Role = "MODEL"
)

// Input is what the farmer sends in one turn. ImageURI and AudioURI hold
// base64 payloads, optionally with a data URI prefix.
type Input struct {
	Text          string
	ImageURI      string
	AudioURI      string
	AudioMIMEType string
}

// Empty reports whether the input carries nothing to send.
func (in Input) Empty() bool {
	return strings.TrimSpace(in.Text) == "" && in.ImageURI == "" && in.AudioURI == ""
}

// HasMedia reports whether an image or audio clip is attached.
func (in Input) HasMedia() bool {
	return in.ImageURI != "" || in.AudioURI != ""
}

// Message is one entry in the conversation log. Exactly one of User or Bot
// is set, matching Role.
type Message struct {
	ID        string
	Role      Role
	User      *Input
	Bot       *BotResponse
	Timestamp time.Time

	// InReplyTo is the ID of the user message a model message answers.
	// Empty for greetings.
	InReplyTo string
}

// Clone returns a copy of m whose User and Bot payloads are not shared.
func (m Message) Clone() Message {
	out := m
	if m.User != nil {
		in := *m.User
		out.User = &in
	}
	if m.Bot != nil {
		b := m.Bot.Clone()
		out.Bot = &b
	}
	return out
}

// UserText returns the text of a user message, or "" for model messages.
func (m Message) UserText() string {
	if m.User == nil {
		return ""
	}
	return m.User.Text
}
