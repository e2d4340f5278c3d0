package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
)

type CreatePostRequest struct {
	Title    string              `json:"title"`
	Category entity.NewsCategory `json:"category"`
	Excerpt  string              `json:"excerpt"`
	Content  string              `json:"content"`
	ImageURL string              `json:"image"`
}

type ModeratePostRequest struct {
	Status entity.NewsStatus `json:"status"`
}

type LikeResponse struct {
	Likes int `json:"likes"`
}

// PublishedPosts godoc
// @Summary      Public news feed
// @Tags         news
// @Produce      json
// @Param        category query string false "Update, Insight or Milestone"
// @Success      200 {array} entity.NewsPost
// @Router       /news [get]
func (h *Handler) PublishedPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	category := entity.NewsCategory(r.URL.Query().Get("category"))
	if category != "" && !category.IsValid() {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, "Unknown category")
		return
	}

	posts, err := h.s.PublishedPosts(ctx, category)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, posts)
}

// LikePost godoc
// @Summary      Like a published post
// @Description  Counted once per anonymous session; repeat likes return the current count unchanged.
// @Tags         news
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200 {object} LikeResponse
// @Failure      404 {object} ResponseError
// @Router       /news/{id}/like [post]
func (h *Handler) LikePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errMsgBadBody)
		return
	}

	if !h.mw.MarkLiked(sessionFromContext(ctx), id) {
		posts, err := h.s.PublishedPosts(ctx, "")
		if err != nil {
			handleServiceErr(ctx, w, err)
			return
		}

		for _, post := range posts {
			if post.ID == id {
				SendJSON(ctx, w, http.StatusOK, LikeResponse{Likes: post.Likes})
				return
			}
		}

		SendErr(ctx, w, http.StatusNotFound, entity.ErrNotFound, errMsgNotFound)

		return
	}

	likes, err := h.s.LikePost(ctx, id)
	if err != nil {
		// Release the dedup mark so the session can retry once the
		// increment works again.
		h.mw.UnmarkLiked(sessionFromContext(ctx), id)
		handleServiceErr(ctx, w, err)

		return
	}

	SendJSON(ctx, w, http.StatusOK, LikeResponse{Likes: likes})
}

// CreatePost godoc
// @Summary      Submit a news post
// @Description  Partner posts enter moderation; admin posts publish immediately.
// @Tags         news
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body CreatePostRequest true "Post"
// @Success      201 {object} entity.NewsPost
// @Router       /news [post]
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthorized, errMsgUnauthorized)
		return
	}

	if user.Role != entity.RoleAdmin && user.Role != entity.RolePartner {
		SendErr(ctx, w, http.StatusForbidden, entity.ErrForbidden, errMsgForbidden)
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, errMsgBadBody)
		return
	}

	post, err := h.s.CreatePost(ctx, user, entity.NewsPost{
		Title:    req.Title,
		Category: req.Category,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, post)
}

// DeletePost godoc
// @Summary      Delete a post
// @Tags         news
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      204
// @Router       /admin/news/{id} [delete]
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errMsgBadBody)
		return
	}

	if err := h.s.DeletePost(ctx, id); err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AllPosts godoc
// @Summary      Posts of every status for moderation
// @Tags         news
// @Security     BearerAuth
// @Produce      json
// @Param        status query string false "pending, published or rejected"
// @Success      200 {array} entity.NewsPost
// @Router       /admin/news [get]
func (h *Handler) AllPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := entity.NewsStatus(r.URL.Query().Get("status"))
	if status != "" && !status.IsValid() {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, "Unknown status")
		return
	}

	posts, err := h.s.AllPosts(ctx, status)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, posts)
}

// ModeratePost godoc
// @Summary      Publish or reject a pending post
// @Tags         news
// @Security     BearerAuth
// @Accept       json
// @Param        id path string true "Post ID"
// @Param        request body ModeratePostRequest true "Target status"
// @Success      204
// @Failure      409 {object} ResponseError "Status can no longer be changed"
// @Router       /admin/news/{id}/status [put]
func (h *Handler) ModeratePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errMsgBadBody)
		return
	}

	var req ModeratePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, errMsgBadBody)
		return
	}

	if err := h.s.ModeratePost(ctx, id, req.Status); err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
