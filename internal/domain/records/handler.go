package records

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"vet-clinic-records/internal/domain/pets"
	"vet-clinic-records/internal/domain/records/details"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/pets/{petID}/records", func(rr chi.Router) {
		rr.Post("/", createRecordHandler(svc, petsSvc))
		rr.Get("/", listRecordsHandler(svc, petsSvc))
	})

	r.Route("/records/{recordID}", func(rr chi.Router) {
		rr.Get("/", getRecordHandler(svc))
		rr.Put("/", updateRecordHandler(svc))

		// Ciclo de vida (cirugía, internación, tratamiento)
		rr.Post("/actions", applyActionHandler(svc))

		// Operaciones quirúrgicas puntuales
		rr.Post("/outcome", changeOutcomeHandler(svc))
		rr.Post("/medications", addMedicationHandler(svc))
		rr.Post("/reschedule", rescheduleHandler(svc))

		// Corrección: crea un registro nuevo referenciando al original
		rr.Post("/corrections", correctRecordHandler(svc))
	})
}

// createRecordRequest es el cuerpo para crear un registro médico. details
// lleva el cuerpo de la variante indicada por type.
type createRecordRequest struct {
	Type           string          `json:"type"`
	ClinicID       string          `json:"clinic_id"`
	VeterinarianID string          `json:"veterinarian_id"`
	Notes          string          `json:"notes"`
	Details        json.RawMessage `json:"details"`
}

type updateRecordRequest struct {
	Notes   string          `json:"notes"`
	Details json.RawMessage `json:"details"`
}

type applyActionRequest struct {
	Action string `json:"action"`
}

type changeOutcomeRequest struct {
	Outcome string `json:"outcome"`
}

type rescheduleRequest struct {
	SurgeryDate string `json:"surgery_date"` // RFC3339
}

type correctRecordRequest struct {
	Reason         string          `json:"reason"`
	VeterinarianID string          `json:"veterinarian_id"`
	Notes          string          `json:"notes"`
	Details        json.RawMessage `json:"details"`
}

type recordResponse struct {
	ID               string          `json:"id"`
	PetID            string          `json:"pet_id"`
	ClinicID         string          `json:"clinic_id"`
	Type             details.Type    `json:"type"`
	Status           string          `json:"status,omitempty"`
	VeterinarianID   string          `json:"veterinarian_id"`
	Notes            string          `json:"notes,omitempty"`
	Details          json.RawMessage `json:"details"`
	CorrectedFromID  string          `json:"corrected_from_id,omitempty"`
	CorrectionReason string          `json:"correction_reason,omitempty"`
	RecordedAt       time.Time       `json:"recorded_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func toRecordResponse(rec MedicalRecord) recordResponse {
	body, _ := json.Marshal(rec.Details)
	return recordResponse{
		ID:               rec.ID,
		PetID:            rec.PetID,
		ClinicID:         rec.ClinicID,
		Type:             rec.Type,
		Status:           rec.Status,
		VeterinarianID:   rec.VeterinarianID,
		Notes:            rec.Notes,
		Details:          body,
		CorrectedFromID:  rec.CorrectedFromID,
		CorrectionReason: rec.CorrectionReason,
		RecordedAt:       rec.RecordedAt,
		UpdatedAt:        rec.UpdatedAt,
	}
}

func createRecordHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if _, err := petsSvc.GetByID(r.Context(), petID); err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		var req createRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, ok := details.ParseType(req.Type)
		if !ok {
			http.Error(w, "unknown record type", http.StatusBadRequest)
			return
		}
		d, err := details.Decode(t, req.Details)
		if err != nil {
			http.Error(w, "invalid details payload", http.StatusBadRequest)
			return
		}

		rec, err := svc.Create(r.Context(), petID, CreateInput{
			ClinicID:       req.ClinicID,
			VeterinarianID: req.VeterinarianID,
			Notes:          req.Notes,
			Details:        d,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toRecordResponse(rec))
	}
}

func listRecordsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if _, err := petsSvc.GetByID(r.Context(), petID); err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		var filter ListFilter

		if raw := strings.TrimSpace(r.URL.Query().Get("types")); raw != "" {
			for _, part := range strings.Split(raw, ",") {
				t, ok := details.ParseType(part)
				if !ok {
					http.Error(w, "unknown record type in types", http.StatusBadRequest)
					return
				}
				filter.Types = append(filter.Types, t)
			}
		}
		if raw := strings.TrimSpace(r.URL.Query().Get("from")); raw != "" {
			ts, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				http.Error(w, "from must be RFC3339", http.StatusBadRequest)
				return
			}
			filter.From = &ts
		}
		if raw := strings.TrimSpace(r.URL.Query().Get("to")); raw != "" {
			ts, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				http.Error(w, "to must be RFC3339", http.StatusBadRequest)
				return
			}
			filter.To = &ts
		}
		if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 || n > 200 {
				http.Error(w, "limit must be 1-200", http.StatusBadRequest)
				return
			}
			filter.Limit = n
		}

		recs, err := svc.ListByPet(r.Context(), petID, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]recordResponse, 0, len(recs))
		for _, rec := range recs {
			out = append(out, toRecordResponse(rec))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.GetByID(r.Context(), chi.URLParam(r, "recordID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toRecordResponse(rec))
	}
}

func updateRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recordID := chi.URLParam(r, "recordID")

		rec, err := svc.GetByID(r.Context(), recordID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		var req updateRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		// El tipo no cambia en un update: se decodifica como el existente.
		d, err := details.Decode(rec.Type, req.Details)
		if err != nil {
			http.Error(w, "invalid details payload", http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), recordID, req.Notes, d)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toRecordResponse(updated))
	}
}

func applyActionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req applyActionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		action, ok := details.ParseAction(req.Action)
		if !ok {
			http.Error(w, "unknown action", http.StatusBadRequest)
			return
		}

		rec, err := svc.ApplyAction(r.Context(), chi.URLParam(r, "recordID"), action)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toRecordResponse(rec))
	}
}

func changeOutcomeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req changeOutcomeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rec, err := svc.ChangeOutcome(r.Context(), chi.URLParam(r, "recordID"),
			details.SurgeryOutcome(strings.ToUpper(strings.TrimSpace(req.Outcome))))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toRecordResponse(rec))
	}
}

func addMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var med details.SurgeryMedication
		if err := json.NewDecoder(r.Body).Decode(&med); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rec, err := svc.AddPostOpMedication(r.Context(), chi.URLParam(r, "recordID"), med)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toRecordResponse(rec))
	}
}

func rescheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req rescheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		date, err := time.Parse(time.RFC3339, req.SurgeryDate)
		if err != nil {
			http.Error(w, "surgery_date must be RFC3339", http.StatusBadRequest)
			return
		}

		rec, err := svc.Reschedule(r.Context(), chi.URLParam(r, "recordID"), date)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toRecordResponse(rec))
	}
}

func correctRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recordID := chi.URLParam(r, "recordID")

		orig, err := svc.GetByID(r.Context(), recordID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		var req correctRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := details.Decode(orig.Type, req.Details)
		if err != nil {
			http.Error(w, "invalid details payload", http.StatusBadRequest)
			return
		}

		rec, err := svc.Correct(r.Context(), recordID, CorrectInput{
			Reason:         req.Reason,
			VeterinarianID: req.VeterinarianID,
			Notes:          req.Notes,
			Details:        d,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toRecordResponse(rec))
	}
}

// writeServiceError mapea la taxonomía de errores del core a 4xx.
func writeServiceError(w http.ResponseWriter, err error) {
	var (
		vErr *details.ValidationError
		tErr *details.InvalidTransitionError
		cErr *details.CorrectionError
	)
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "record not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrNoLifecycle), errors.Is(err, ErrNotSurgery):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrCorrectionNotPermitted):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.As(err, &vErr):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &tErr), errors.As(err, &cErr):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para mantener los paquetes independientes.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
