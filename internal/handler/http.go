package handler

import (
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"
	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/middleware"
	"github.com/SergeyBogomolovv/herbal-pharmacy/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		utils.WriteFieldError(w, name, "must be a positive integer")
		return 0, false
	}
	return id, true
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, validate *validator.Validate, v any) bool {
	if err := utils.DecodeBody(r, v); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

func callerFrom(r *http.Request) entities.Caller {
	c, _ := middleware.CallerFrom(r.Context())
	return c
}
