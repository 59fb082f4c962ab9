package handlers

import (
	"net/http"
	"strings"

	"travelagency/internal/domain"
	"travelagency/internal/domain/models"
	"travelagency/internal/repositories"

	"github.com/gin-gonic/gin"
)

// Website content handlers. Responses use the resource-named payload keys the
// public site consumes: {getAbout}, {getBrand}, {getCounter}, {faqs},
// {galleries}, {testimonials}.

func contentRepo() repositories.ContentRepository {
	return repositories.ContentRepository{}
}

// --- about ---

// GET /api/abouts
func GetAbout(c *gin.Context) {
	about, err := contentRepo().GetAbout()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"getAbout": about})
}

// POST /api/abouts
func SaveAbout(c *gin.Context) {
	var req models.About
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		RespondDomainError(c, domain.ValidationError{Field: "title", Msg: "title is required"})
		return
	}
	about, err := contentRepo().UpsertAbout(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"getAbout": about})
}

// --- brand ---

// GET /api/brand
func GetBrand(c *gin.Context) {
	brand, err := contentRepo().GetBrand()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"getBrand": brand})
}

// POST /api/brand
func SaveBrand(c *gin.Context) {
	var req models.Brand
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		RespondDomainError(c, domain.ValidationError{Field: "name", Msg: "name is required"})
		return
	}
	brand, err := contentRepo().UpsertBrand(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"getBrand": brand})
}

// --- counters ---

// GET /api/counters
func GetCounters(c *gin.Context) {
	counters, err := contentRepo().ListCounters()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"getCounter": counters})
}

// POST /api/counters
func CreateCounter(c *gin.Context) {
	var req models.Counter
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Label) == "" {
		RespondDomainError(c, domain.ValidationError{Field: "label", Msg: "label is required"})
		return
	}
	if _, err := contentRepo().CreateCounter(req); err != nil {
		RespondDomainError(c, err)
		return
	}
	GetCounters(c)
}

// PUT /api/counters/:id
func UpdateCounter(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var req models.Counter
	if !BindJSONOrError(c, &req) {
		return
	}
	req.ID = id
	if err := contentRepo().UpdateCounter(req); err != nil {
		RespondDomainError(c, err)
		return
	}
	GetCounters(c)
}

// DELETE /api/counters/:id
func DeleteCounter(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	if err := contentRepo().DeleteCounter(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	GetCounters(c)
}

// --- faqs ---

// GET /api/faqs
func GetFAQs(c *gin.Context) {
	faqs, err := contentRepo().ListFAQs()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"faqs": faqs})
}

// POST /api/faqs
func CreateFAQ(c *gin.Context) {
	var req models.FAQ
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Answer) == "" {
		RespondDomainError(c, domain.ValidationError{Field: "question", Msg: "question and answer are required"})
		return
	}
	if _, err := contentRepo().CreateFAQ(req); err != nil {
		RespondDomainError(c, err)
		return
	}
	GetFAQs(c)
}

// PUT /api/faqs/:id
func UpdateFAQ(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var req models.FAQ
	if !BindJSONOrError(c, &req) {
		return
	}
	req.ID = id
	if err := contentRepo().UpdateFAQ(req); err != nil {
		RespondDomainError(c, err)
		return
	}
	GetFAQs(c)
}

// DELETE /api/faqs/:id
func DeleteFAQ(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	if err := contentRepo().DeleteFAQ(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	GetFAQs(c)
}

// --- gallery ---

// GET /api/galleries
func GetGallery(c *gin.Context) {
	items, err := contentRepo().ListGallery()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"galleries": items})
}

// POST /api/galleries
func CreateGalleryItem(c *gin.Context) {
	var req models.GalleryItem
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.ImageURL) == "" {
		RespondDomainError(c, domain.ValidationError{Field: "imageUrl", Msg: "image url is required"})
		return
	}
	if _, err := contentRepo().CreateGalleryItem(req); err != nil {
		RespondDomainError(c, err)
		return
	}
	GetGallery(c)
}

// PUT /api/galleries/:id
func UpdateGalleryItem(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var req models.GalleryItem
	if !BindJSONOrError(c, &req) {
		return
	}
	req.ID = id
	if err := contentRepo().UpdateGalleryItem(req); err != nil {
		RespondDomainError(c, err)
		return
	}
	GetGallery(c)
}

// DELETE /api/galleries/:id
func DeleteGalleryItem(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	if err := contentRepo().DeleteGalleryItem(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	GetGallery(c)
}

// --- testimonials ---

// GET /api/testimonials
func GetTestimonials(c *gin.Context) {
	testimonials, err := contentRepo().ListTestimonials()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}

// POST /api/testimonials
func CreateTestimonial(c *gin.Context) {
	var req models.Testimonial
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Author) == "" || strings.TrimSpace(req.Quote) == "" {
		RespondDomainError(c, domain.ValidationError{Field: "author", Msg: "author and quote are required"})
		return
	}
	if _, err := contentRepo().CreateTestimonial(req); err != nil {
		RespondDomainError(c, err)
		return
	}
	GetTestimonials(c)
}

// PUT /api/testimonials/:id
func UpdateTestimonial(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var req models.Testimonial
	if !BindJSONOrError(c, &req) {
		return
	}
	req.ID = id
	if err := contentRepo().UpdateTestimonial(req); err != nil {
		RespondDomainError(c, err)
		return
	}
	GetTestimonials(c)
}

// DELETE /api/testimonials/:id
func DeleteTestimonial(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	if err := contentRepo().DeleteTestimonial(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	GetTestimonials(c)
}
