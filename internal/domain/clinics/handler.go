package clinics

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/clinics", func(cr chi.Router) {
		cr.Post("/", createClinicHandler(svc))
		cr.Get("/", listClinicsHandler(svc))
		cr.Get("/{clinicID}", getClinicHandler(svc))
		cr.Patch("/{clinicID}", updateClinicHandler(svc))
	})
}

type createClinicRequest struct {
	Name          string `json:"name"`
	LicenseNumber string `json:"license_number"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
}

type updateClinicRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}

type clinicResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	LicenseNumber string    `json:"license_number"`
	Address       string    `json:"address,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toClinicResponse(c Clinic) clinicResponse {
	return clinicResponse{
		ID:            c.ID,
		Name:          c.Name,
		LicenseNumber: c.LicenseNumber,
		Address:       c.Address,
		Phone:         c.Phone,
		Email:         c.Email,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func createClinicHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createClinicRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Create(r.Context(), CreateInput(req))
		if err != nil {
			if errors.Is(err, ErrLicenseTaken) {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, toClinicResponse(c))
	}
}

func listClinicsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cs, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		out := make([]clinicResponse, 0, len(cs))
		for _, c := range cs {
			out = append(out, toClinicResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getClinicHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "clinicID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "clinic not found", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, toClinicResponse(c))
	}
}

func updateClinicHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateClinicRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Update(r.Context(), chi.URLParam(r, "clinicID"), UpdateInput{
			Name:    req.Name,
			Address: req.Address,
			Phone:   req.Phone,
			Email:   req.Email,
		})
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "clinic not found", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, toClinicResponse(c))
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para mantener los paquetes independientes.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
