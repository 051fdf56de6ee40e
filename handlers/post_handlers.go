package handlers

import (
	"github.com/gofiber/fiber/v2"

	"sklyit/models"
	"sklyit/services"
)

// PostHandler serves the social feed of a business.
type PostHandler struct {
	posts *services.PostsService
}

func NewPostHandler(posts *services.PostsService) *PostHandler {
	return &PostHandler{posts: posts}
}

func (h *PostHandler) HandleGetPosts(c *fiber.Ctx) error {
	visibleOnly := c.QueryBool("visible", false)
	posts, err := h.posts.GetAllPosts(c.Context(), c.Params("business_id"), visibleOnly)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, posts)
}

func (h *PostHandler) HandleGetPost(c *fiber.Ctx) error {
	post, err := h.posts.GetPostByID(c.Context(), c.Params("business_id"), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, post)
}

func (h *PostHandler) HandleCreatePost(c *fiber.Ctx) error {
	var req models.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return respondValidation(c, errs)
	}
	name, data, err := readImageFile(c, "image")
	if err != nil {
		return respondError(c, models.Upstream("failed to read uploaded image", err))
	}
	post, err := h.posts.CreatePost(c.Context(), c.Params("business_id"), req, name, data)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, post)
}

func (h *PostHandler) HandleUpdatePost(c *fiber.Ctx) error {
	var req models.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return respondValidation(c, errs)
	}
	post, err := h.posts.UpdatePost(c.Context(), c.Params("business_id"), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, post)
}

func (h *PostHandler) HandleFlagPost(c *fiber.Ctx) error {
	if err := h.posts.FlagPost(c.Context(), c.Params("business_id"), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "Post flagged")
}

// custID resolves the acting customer, preferring the authenticated user.
func custID(c *fiber.Ctx) string {
	if id, ok := c.Locals("userID").(string); ok && id != "" {
		return id
	}
	return c.Query("cust_id")
}

func (h *PostHandler) HandleLikePost(c *fiber.Ctx) error {
	post, err := h.posts.LikePost(c.Context(), custID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, post)
}

func (h *PostHandler) HandleUnlikePost(c *fiber.Ctx) error {
	post, err := h.posts.UnlikePost(c.Context(), custID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, post)
}

func (h *PostHandler) HandleCommentPost(c *fiber.Ctx) error {
	var req models.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return respondValidation(c, errs)
	}
	post, err := h.posts.CommentPost(c.Context(), custID(c), c.Params("id"), req.Comment)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, post)
}

func (h *PostHandler) HandleUncommentPost(c *fiber.Ctx) error {
	post, err := h.posts.UncommentPost(c.Context(), custID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, post)
}

func (h *PostHandler) HandleDeletePost(c *fiber.Ctx) error {
	if err := h.posts.DeletePost(c.Context(), c.Params("business_id"), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "Post deleted")
}
