package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vet-clinic-records/internal/router"
)

func TestHTTP_EndToEnd_RecordLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Salud
	{
		st, _ := doReq(t, ts.URL, "GET", "/health", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 health, got %d", st)
		}
	}

	// 2) Clínica (con unicidad de matrícula)
	clinicID := createEntity(t, ts.URL, "/clinics", map[string]any{
		"name":           "Clínica San Roque",
		"license_number": "MV-1234",
		"email":          "contacto@sanroque.vet",
	})
	{
		st, body := doReq(t, ts.URL, "POST", "/clinics", map[string]any{
			"name":           "Otra clínica",
			"license_number": "MV-1234",
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 duplicate license, got %d body=%s", st, string(body))
		}
	}

	// 3) Dueño y mascota
	ownerID := createEntity(t, ts.URL, "/owners", map[string]any{
		"name":  "Ana Pérez",
		"email": "ana@example.com",
	})
	petID := createEntity(t, ts.URL, "/owners/"+ownerID+"/pets", map[string]any{
		"name":    "Milo",
		"species": "dog",
		"breed":   "mixed",
		"sex":     "male",
	})

	// 4) Registro sin ciclo de vida (peso)
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/records", map[string]any{
			"type":            "WEIGHT",
			"clinic_id":       clinicID,
			"veterinarian_id": "vet-1",
			"details":         map[string]any{"value": 4.2, "unit": "kg"},
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 weight record, got %d body=%s", st, string(body))
		}
	}

	// 5) Tratamiento con ciclo de vida completo
	treatmentID := ""
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/records", map[string]any{
			"type":            "TREATMENT",
			"clinic_id":       clinicID,
			"veterinarian_id": "vet-1",
			"details": map[string]any{
				"name":         "Antibióticos orales",
				"start_date":   time.Now().Add(-time.Hour).Format(time.RFC3339),
				"instructions": "Administrar con comida",
				"status":       "PLANNED",
				"medications": []map[string]any{
					{"name": "Amoxicilina", "dosage": "250mg", "frequency": "12h", "days": 10},
				},
			},
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 treatment record, got %d body=%s", st, string(body))
		}
		treatmentID = recordID(t, body)
		if status := recordStatus(t, body); status != "PLANNED" {
			t.Fatalf("expected PLANNED, got %q", status)
		}
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/records/"+treatmentID+"/actions", map[string]any{"action": "ACTIVATE"})
		if st != http.StatusOK || recordStatus(t, body) != "ACTIVE" {
			t.Fatalf("activate: got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/records/"+treatmentID+"/actions", map[string]any{"action": "FINISH"})
		if st != http.StatusOK || recordStatus(t, body) != "FINISHED" {
			t.Fatalf("finish: got %d body=%s", st, string(body))
		}
	}
	{
		// Un tratamiento terminado no se reactiva.
		st, _ := doReq(t, ts.URL, "POST", "/records/"+treatmentID+"/actions", map[string]any{"action": "ACTIVATE"})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 on terminal treatment, got %d", st)
		}
	}

	// 6) Diagnóstico y su corrección
	diagnosisID := ""
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/records", map[string]any{
			"type":            "DIAGNOSIS",
			"clinic_id":       clinicID,
			"veterinarian_id": "vet-1",
			"details": map[string]any{
				"name":         "Otitis externa",
				"category":     "DERMATOLOGY",
				"severity":     "MILD",
				"diagnosed_at": time.Now().Add(-time.Hour).Format(time.RFC3339),
			},
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 diagnosis record, got %d body=%s", st, string(body))
		}
		diagnosisID = recordID(t, body)
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/records/"+diagnosisID+"/corrections", map[string]any{
			"reason":          "severidad subestimada",
			"veterinarian_id": "vet-2",
			"details": map[string]any{
				"name":         "Otitis externa",
				"category":     "DERMATOLOGY",
				"severity":     "SEVERE",
				"diagnosed_at": time.Now().Add(-time.Hour).Format(time.RFC3339),
			},
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 correction, got %d body=%s", st, string(body))
		}
		var resp struct {
			CorrectedFromID string `json:"corrected_from_id"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.CorrectedFromID != diagnosisID {
			t.Fatalf("correction should reference the original, body=%s", string(body))
		}
	}

	// 7) Listado filtrado por tipo
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/records?types=TREATMENT", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d body=%s", st, string(body))
		}
		var recs []map[string]any
		_ = json.Unmarshal(body, &recs)
		if len(recs) != 1 {
			t.Fatalf("expected 1 treatment, got %d body=%s", len(recs), string(body))
		}
	}

	// 8) Mascota inexistente
	{
		st, _ := doReq(t, ts.URL, "POST", "/pets/nope/records", map[string]any{
			"type":            "WEIGHT",
			"clinic_id":       clinicID,
			"veterinarian_id": "vet-1",
			"details":         map[string]any{"value": 4.2, "unit": "kg"},
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 unknown pet, got %d", st)
		}
	}
}

func createEntity(t *testing.T, baseURL, path string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 creating %s, got %d body=%s", path, st, string(body))
	}
	return recordID(t, body)
}

func recordID(t *testing.T, body []byte) string {
	t.Helper()

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("missing id in body=%s", string(body))
	}
	return resp.ID
}

func recordStatus(t *testing.T, body []byte) string {
	t.Helper()

	var resp struct {
		Status string `json:"status"`
	}
	_ = json.Unmarshal(body, &resp)
	return resp.Status
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
