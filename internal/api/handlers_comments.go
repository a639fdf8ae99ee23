// Cinerate - Movie Rating and Statistics API
// Copyright 2026 Cinerate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinerate/cinerate

package api

import (
	"net/http"

	"github.com/cinerate/cinerate/internal/auth"
	"github.com/cinerate/cinerate/internal/models"
)

// ListMovieComments handles GET /api/v1/comments/movie/{movie_id}.
func (h *Handler) ListMovieComments(w http.ResponseWriter, r *http.Request) {
	movieID, ok := uuidParam(w, r, "movie_id")
	if !ok {
		return
	}
	skip, limit := h.pagination(r)

	comments, err := h.db.GetCommentsByMovie(r.Context(), movieID, skip, limit)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, comments)
}

// CreateComment handles POST /api/v1/comments/.
func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	var body models.CommentCreate
	if !decodeBody(w, r, &body) {
		return
	}

	comment, err := h.db.CreateComment(r.Context(), user.ID, &body)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, comment)
}

// UpdateComment handles PUT /api/v1/comments/{comment_id}. Only the comment
// author or an admin may edit.
func (h *Handler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	commentID, ok := uuidParam(w, r, "comment_id")
	if !ok {
		return
	}

	comment, err := h.db.GetCommentByID(r.Context(), commentID)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if comment.UserID != user.ID && !user.IsAdmin {
		respondDetail(w, http.StatusForbidden, "Not enough permissions")
		return
	}

	var body models.CommentUpdate
	if !decodeBody(w, r, &body) {
		return
	}

	updated, err := h.db.UpdateComment(r.Context(), commentID, &body)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// DeleteComment handles DELETE /api/v1/comments/{comment_id}. Only the
// comment author or an admin may delete.
func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	commentID, ok := uuidParam(w, r, "comment_id")
	if !ok {
		return
	}

	comment, err := h.db.GetCommentByID(r.Context(), commentID)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if comment.UserID != user.ID && !user.IsAdmin {
		respondDetail(w, http.StatusForbidden, "Not enough permissions")
		return
	}

	if err := h.db.DeleteComment(r.Context(), commentID); err != nil {
		respondStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
