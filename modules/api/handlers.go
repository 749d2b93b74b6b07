package api

import (
	"log"
	"math/rand/v2"
	"strings"

	postdomain "github.com/example/jwt-posts-demo/domain/post"
	domain "github.com/example/jwt-posts-demo/domain/user"
	"github.com/example/jwt-posts-demo/modules/auth"
	"github.com/example/jwt-posts-demo/modules/post"
	"github.com/gofiber/fiber/v2"
)

// Handlers contains HTTP handlers for the API.
type Handlers struct {
	authAdapter auth.AuthPort
	postAdapter post.PostPort
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(authAdapter auth.AuthPort, postAdapter post.PostPort) *Handlers {
	return &Handlers{
		authAdapter: authAdapter,
		postAdapter: postAdapter,
	}
}

// Root returns the welcome message.
func (h *Handlers) Root(c *fiber.Ctx) error {
	return c.JSON(WelcomeResponse{
		Message: "Welcome to the JWT Posts Demo",
		Docs:    "/docs",
	})
}

// Signup handles user registration.
func (h *Handlers) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	user, err := h.authAdapter.Signup(c.UserContext(), auth.SignupRequest{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(toUserResponse(user))
}

// Token exchanges a username (email) and password for a bearer token.
func (h *Handlers) Token(c *fiber.Ctx) error {
	var req TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	token, err := h.authAdapter.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
	})
}

// Me returns the authenticated user.
func (h *Handlers) Me(c *fiber.Ctx) error {
	user, ok := CurrentUser(c)
	if !ok {
		return unauthorized(c, "Not authenticated")
	}
	return c.JSON(toUserResponse(user))
}

// MyPosts returns the authenticated user's posts, newest first.
func (h *Handlers) MyPosts(c *fiber.Ctx) error {
	user, ok := CurrentUser(c)
	if !ok {
		return unauthorized(c, "Not authenticated")
	}

	posts, err := h.postAdapter.ListByUser(c.UserContext(), user.ID)
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(toPostResponses(posts))
}

// UserByID returns another user's public profile.
func (h *Handlers) UserByID(c *fiber.Ctx) error {
	user, err := h.authAdapter.GetUser(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(toUserResponse(user))
}

// DeleteMe removes the authenticated user's account. Tokens already issued
// for it stop resolving.
func (h *Handlers) DeleteMe(c *fiber.Ctx) error {
	user, ok := CurrentUser(c)
	if !ok {
		return unauthorized(c, "Not authenticated")
	}

	if err := h.authAdapter.DeleteUser(c.UserContext(), user.ID); err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(DeleteResponse{Deleted: true, UserID: user.ID})
}

// Random picks a random user, round-trips a token for them and returns
// their posts alongside a random number.
func (h *Handlers) Random(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := h.authAdapter.RandomUser(ctx)
	if err != nil {
		return handleServiceError(c, err)
	}

	token, err := h.authAdapter.IssueToken(ctx, user.Email)
	if err != nil {
		return handleServiceError(c, err)
	}

	subject, err := h.authAdapter.VerifyToken(ctx, token)
	if err != nil {
		log.Printf("[api] Token decode failed for %s: %v", user.Email, err)
		return internalError(c, "JWT token decoding failed")
	}
	if subject != user.Email {
		return internalError(c, "JWT token verification failed")
	}

	posts, err := h.postAdapter.ListByUser(ctx, user.ID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(RandomResponse{
		RandomNumber: rand.IntN(1000) + 1,
		User: RandomUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
		JWTToken: token,
		Posts:    toPostResponses(posts),
	})
}

// Echo returns the unmatched path as a JSON string.
func (h *Handlers) Echo(c *fiber.Ctx) error {
	return c.JSON(c.Params("*"))
}

// handleServiceError maps errors coming back over the service bus to HTTP
// responses. Errors arrive as strings, so known messages are matched.
func handleServiceError(c *fiber.Ctx, err error) error {
	errStr := err.Error()

	switch {
	case strings.Contains(errStr, domain.ErrInvalidCredentials.Error()):
		return unauthorized(c, "Incorrect email or password")
	case strings.Contains(errStr, domain.ErrUnauthorized.Error()):
		return unauthorized(c, "Could not validate credentials")
	case strings.Contains(errStr, domain.ErrUserExists.Error()):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
			Error:   "conflict",
			Message: "Email already registered",
		})
	case strings.Contains(errStr, domain.ErrUserNotFound.Error()):
		return notFound(c, "User not found")
	case strings.Contains(errStr, domain.ErrNoUsers.Error()):
		return notFound(c, "No users found in database")
	case strings.Contains(errStr, domain.ErrPasswordTooLong.Error()):
		return badRequest(c, "Password must be at most 72 bytes")
	case strings.Contains(errStr, postdomain.ErrTitleRequired.Error()),
		strings.Contains(errStr, postdomain.ErrContentRequired.Error()):
		return badRequest(c, errStr)
	default:
		log.Printf("[api] Internal error: %v", err)
		return internalError(c, "An internal error occurred")
	}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:   "bad_request",
		Message: message,
	})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
		Error:   "not_found",
		Message: message,
	})
}

func internalError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "internal_error",
		Message: message,
	})
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toPostResponses(posts []*postdomain.Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, PostResponse{
			ID:        p.ID,
			UserID:    p.UserID,
			Title:     p.Title,
			Content:   p.Content,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		})
	}
	return out
}
