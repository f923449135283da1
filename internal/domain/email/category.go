package email

import (
	"errors"
	"strings"
)

type Category string

const (
	CategoryComplaint      Category = "complaint"
	CategoryInquiry        Category = "inquiry"
	CategoryFeedback       Category = "feedback"
	CategorySupportRequest Category = "support_request"
	CategoryOther          Category = "other"
)

// ErrUnknownCategory signals model output that is not one of the five
// recognized categories.
var ErrUnknownCategory = errors.New("unknown category")

// Categories lists the closed category set in a stable order, used when
// building the classification prompt.
func Categories() []Category {
	return []Category{
		CategoryComplaint,
		CategoryInquiry,
		CategoryFeedback,
		CategorySupportRequest,
		CategoryOther,
	}
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryComplaint, CategoryInquiry, CategoryFeedback, CategorySupportRequest, CategoryOther:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory normalizes raw model output (trim, lowercase) and checks
// membership in the category set.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if !c.IsValid() {
		return "", ErrUnknownCategory
	}
	return c, nil
}
