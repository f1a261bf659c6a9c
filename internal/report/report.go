// Package report builds shareable farmer reports from diagnoses.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/kisanlabs/plantdoctor/internal/chat"
)

// DefaultSymptoms is recorded when the farmer described symptoms in chat
// rather than in a dedicated form.
const DefaultSymptoms = "Discussed in chat"

// FarmerReport is a snapshot of one diagnosis, taken when the farmer asks
// for a report.
type FarmerReport struct {
	ID        string
	Timestamp time.Time
	Crop      string
	Symptoms  string
	Diagnosis chat.DiagnosisData

	// ImageURI is the photo the diagnosis was made from, if any.
	ImageURI string
}

// New builds a report from diag. The diagnosis is copied, so later edits
// to diag do not leak into the report.
func New(diag chat.DiagnosisData, imageURI string, now time.Time) FarmerReport {
	return FarmerReport{
		ID:        uuid.NewString(),
		Timestamp: now,
		Crop:      diag.CropDetected,
		Symptoms:  DefaultSymptoms,
		Diagnosis: diag.Clone(),
		ImageURI:  imageURI,
	}
}

// DiagnosisData returns a copy of the diagnosis the report was built from.
func (r FarmerReport) DiagnosisData() chat.DiagnosisData {
	return r.Diagnosis.Clone()
}

// HasImage reports whether a photo is attached.
func (r FarmerReport) HasImage() bool {
	return r.ImageURI != ""
}
