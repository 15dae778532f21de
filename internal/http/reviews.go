package http

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/booklend/booklend/internal/auth"
	"github.com/booklend/booklend/internal/database/reviews"
	"github.com/booklend/booklend/internal/entities"
)

// ReviewsController handles the public review form and the admin listing.
type ReviewsController struct {
	reviews  *reviews.Repository
	sessions *auth.SessionManager
}

// NewReviewsController creates a new reviews controller.
func NewReviewsController(r *reviews.Repository, sessions *auth.SessionManager) *ReviewsController {
	return &ReviewsController{reviews: r, sessions: sessions}
}

// ReviewPage renders the public review form.
func (rc *ReviewsController) ReviewPage(c *gin.Context) {
	render(c, rc.sessions, "review.html", nil)
}

// SubmitReview appends a review without validating any field.
func (rc *ReviewsController) SubmitReview(c *gin.Context) {
	review := &entities.Review{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Message: c.PostForm("message"),
	}

	if err := rc.reviews.Create(review); err != nil {
		log.Printf("failed to store review: %v", err)
		redirectWithFlash(c, rc.sessions, "/", auth.FlashDanger, "Could not submit the review. Please try again.")
		return
	}

	redirectWithFlash(c, rc.sessions, "/", auth.FlashSuccess, "Review submitted successfully!")
}

// AdminReviews lists every review for administrators.
func (rc *ReviewsController) AdminReviews(c *gin.Context) {
	all, err := rc.reviews.ListAll()
	if err != nil {
		log.Printf("failed to list reviews: %v", err)
	}

	render(c, rc.sessions, "admin_reviews.html", gin.H{
		"Reviews": all,
	})
}
