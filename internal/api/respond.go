package api

import (
	"atelier/internal/apperr"
	"encoding/json"
	"log"
	"net/http"
)

type errorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// statusOf сопоставляет класс доменной ошибки с HTTP-статусом.
func statusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindState:
		return http.StatusConflict
	case apperr.KindAuthorization:
		return http.StatusForbidden
	case apperr.KindRateLimit:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// respondWithError отдает клиенту текст ошибки. Ответы администратору
// дополнительно содержат машинный код и подробности.
func respondWithError(w http.ResponseWriter, err error, forAdmin bool) {
	status := statusOf(err)
	resp := errorResponse{Error: "внутренняя ошибка сервера"}
	if e, ok := apperr.As(err); ok {
		resp.Error = e.Message
	} else {
		log.Printf("Внутренняя ошибка: %v", err)
	}
	if forAdmin {
		resp.Code = apperr.CodeOf(err)
		if status != http.StatusInternalServerError {
			resp.Details = err.Error()
		}
	}
	respondWithJSON(w, status, resp)
}

// respondWithJSON вспомогательная функция для отправки JSON-ответов.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Ошибка сериализации ответа: %v", err)
		http.Error(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

const maxJSONBody = 1 << 20

// decodeJSON читает тело запроса; любая ошибка разбора - ErrInvalidRequest.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(dst); err != nil {
		return apperr.ErrInvalidRequest
	}
	return nil
}
