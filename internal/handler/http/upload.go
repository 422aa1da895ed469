// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/spotted-relay/internal/metrics"
	"github.com/MKhiriev/spotted-relay/internal/utils"
	"github.com/MKhiriev/spotted-relay/models"
)

// upload handles POST /upload. The body is capped at the hard ceiling before
// any part is read; a body that is not multipart is treated as an empty form.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.uploadCfg.MaxBodySize())

	var request models.UploadRequest
	if body, err := r.MultipartReader(); err == nil {
		request, err = h.services.UploadService.Receive(r.Context(), body)
		if err != nil {
			h.uploadFailed(w, r, uploadTransportError(err))
			return
		}
	}

	if err := h.services.UploadService.Process(r.Context(), request); err != nil {
		h.uploadFailed(w, r, err)
		return
	}

	h.observeUpload(metrics.UploadDelivered)
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: MsgUploadOK}, http.StatusOK)
}

func (h *Handler) uploadFailed(w http.ResponseWriter, r *http.Request, err error) {
	if statusFromError(err) >= http.StatusInternalServerError {
		h.observeUpload(metrics.UploadFailed)
	} else {
		h.observeUpload(metrics.UploadRejected)
	}
	writeError(w, r, "*Handler.upload", err)
}

func (h *Handler) observeUpload(outcome string) {
	if h.metrics != nil {
		h.metrics.ObserveUpload(outcome)
	}
}

func uploadTransportError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return errors.Join(ErrUploadTooLarge, err)
	}
	return err
}
