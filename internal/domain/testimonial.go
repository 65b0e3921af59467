package domain

import "context"

// Testimonial is a single endorsement shown on the site
type Testimonial struct {
	Name        string `json:"name" validate:"min=2" example:"Sarah Johnson"`
	Message     string `json:"message" validate:"min=10" example:"Working with Rudra was an absolute pleasure."`
	Designation string `json:"designation" validate:"required" example:"Product Manager at TechCorp"`
}

// TestimonialSource is the upstream testimonials API.
// Fetch reports failures so callers can avoid caching them.
type TestimonialSource interface {
	Fetch(ctx context.Context) ([]Testimonial, error)
	Create(ctx context.Context, t Testimonial) (*Testimonial, error)
}

// TestimonialCache stores the last good testimonial list
type TestimonialCache interface {
	Get(ctx context.Context) ([]Testimonial, bool)
	Set(ctx context.Context, items []Testimonial) error
	Invalidate(ctx context.Context) error
}

// TestimonialValidator checks a testimonial and returns it unchanged when accepted
type TestimonialValidator interface {
	ValidateTestimonial(t Testimonial) (Testimonial, error)
}

// TestimonialUsecase defines testimonial operations
type TestimonialUsecase interface {
	List(ctx context.Context) []Testimonial
	Add(ctx context.Context, t Testimonial) (*Testimonial, error)
}

// DefaultTestimonials is the site's built-in set, served when the upstream has nothing
var DefaultTestimonials = []Testimonial{
	{
		Name:        "Sarah Johnson",
		Designation: "Product Manager at TechCorp",
		Message:     "Working with Rudra was an absolute pleasure. Their technical expertise and ability to translate complex requirements into elegant solutions greatly impressed our team.",
	},
	{
		Name:        "Michael Chen",
		Designation: "CTO at StartupX",
		Message:     "Rudra is one of the most talented developers I've worked with. Their attention to detail and problem-solving skills are exceptional.",
	},
	{
		Name:        "Emily Rodriguez",
		Designation: "Creative Director at DesignHub",
		Message:     "I was blown away by Rudra's ability to transform our design vision into a flawless, responsive website.",
	},
	{
		Name:        "David Patel",
		Designation: "Founder at InnovateCo",
		Message:     "Rudra brought both technical expertise and creative thinking to our challenging project.",
	},
}
