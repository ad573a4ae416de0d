package model

// CollectionRequest describes a catalog collection such as Men, Women or Kids.
type CollectionRequest struct {
	Name        *string `json:"name" validate:"required"`
	Slug        *string `json:"slug" validate:"required"`
	Image       *string `json:"image" validate:"required" doc:"Hero / lifestyle image URL"`
	Description *string `json:"description" nullable:"true"`
}

func (c *CollectionRequest) Collection() string { return CollectionCollection }

func (c *CollectionRequest) Document() Document {
	return Document{
		"name":        valueOrNil(c.Name),
		"slug":        valueOrNil(c.Slug),
		"image":       valueOrNil(c.Image),
		"description": valueOrNil(c.Description),
	}
}

// AthleteRequest describes a brand ambassador or community athlete.
type AthleteRequest struct {
	Name      *string `json:"name" validate:"required"`
	Sport     *string `json:"sport" validate:"required"`
	Image     *string `json:"image" validate:"required"`
	Bio       *string `json:"bio" nullable:"true"`
	Instagram *string `json:"instagram" nullable:"true"`
}

func (a *AthleteRequest) Collection() string { return CollectionAthlete }

func (a *AthleteRequest) Document() Document {
	return Document{
		"name":      valueOrNil(a.Name),
		"sport":     valueOrNil(a.Sport),
		"image":     valueOrNil(a.Image),
		"bio":       valueOrNil(a.Bio),
		"instagram": valueOrNil(a.Instagram),
	}
}

// NewsletterRequest is the body of POST /api/newsletter.
// The email is stored as given; no format or uniqueness check is made.
type NewsletterRequest struct {
	Email *string `json:"email" validate:"required"`
}

func (n *NewsletterRequest) Collection() string { return CollectionNewsletter }

func (n *NewsletterRequest) Document() Document {
	return Document{
		"email": valueOrNil(n.Email),
	}
}
