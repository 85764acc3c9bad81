package validators

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-pet-walker/models"
)

// Field name constants shared by the form validators. They are passed to
// Form.Field and Validate to restrict validation to a subset of fields.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldContent     = "content"
	FieldPets        = "pets"
	FieldStartsAt    = "starts_at"
	FieldEndsAt      = "ends_at"
	FieldPrice       = "price"
	FieldName        = "name"
	FieldSpecies     = "species"
	FieldBreed       = "breed"
	FieldBirthDate   = "birth_date"
	FieldWeight      = "weight"
	FieldNotes       = "notes"
	FieldRating      = "rating"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldRole        = "role"
	FieldRecordedAt  = "recorded_at"
)

// Length limits applied by the forms.
const (
	MaxTitleLength       = 120
	MaxNameLength        = 60
	MaxDescriptionLength = 2000
	MaxContentLength     = 5000
	MaxCommentLength     = 1000
	MinPasswordLength    = 8
	MaxPetWeightKg       = 150.0
)

// Clock returns the current time. Forms that compare dates take one so
// tests can pin "now".
type Clock func() time.Time

// AssignmentForm validates the configure-assignment screen.
func AssignmentForm(now Clock) Form[models.Assignment] {
	return NewForm(
		Rule[models.Assignment]{FieldTitle, func(a models.Assignment) Validation {
			return First(Required(a.Title), MaxLength(a.Title, MaxTitleLength))
		}},
		Rule[models.Assignment]{FieldDescription, func(a models.Assignment) Validation {
			return MaxLength(a.Description, MaxDescriptionLength)
		}},
		Rule[models.Assignment]{FieldPets, func(a models.Assignment) Validation {
			return NonEmpty(a.PetIDs)
		}},
		Rule[models.Assignment]{FieldStartsAt, func(a models.Assignment) Validation {
			if a.StartsAt.IsZero() {
				return Invalid(MsgRequired)
			}
			return NotBefore(a.StartsAt, now())
		}},
		Rule[models.Assignment]{FieldEndsAt, func(a models.Assignment) Validation {
			if a.EndsAt.IsZero() {
				return Invalid(MsgRequired)
			}
			return After(a.EndsAt, a.StartsAt)
		}},
		Rule[models.Assignment]{FieldPrice, func(a models.Assignment) Validation {
			return Positive(a.Price)
		}},
	)
}

// PetForm validates the configure-pet screen.
func PetForm(now Clock) Form[models.Pet] {
	return NewForm(
		Rule[models.Pet]{FieldName, func(p models.Pet) Validation {
			return First(Required(p.Name), MaxLength(p.Name, MaxNameLength))
		}},
		Rule[models.Pet]{FieldSpecies, func(p models.Pet) Validation {
			return OneOf(p.Species, models.SpeciesDog, models.SpeciesCat, models.SpeciesOther)
		}},
		Rule[models.Pet]{FieldBreed, func(p models.Pet) Validation {
			return MaxLength(p.Breed, MaxNameLength)
		}},
		Rule[models.Pet]{FieldBirthDate, func(p models.Pet) Validation {
			if p.BirthDate == nil {
				return OK()
			}
			return NotAfter(*p.BirthDate, now())
		}},
		Rule[models.Pet]{FieldWeight, func(p models.Pet) Validation {
			if p.WeightKg == 0 {
				return OK()
			}
			return FloatRange(p.WeightKg, 0.1, MaxPetWeightKg)
		}},
		Rule[models.Pet]{FieldNotes, func(p models.Pet) Validation {
			return MaxLength(p.Notes, MaxDescriptionLength)
		}},
	)
}

// MedicalRecordForm validates a medical record entry.
func MedicalRecordForm(now Clock) Form[models.MedicalRecord] {
	return NewForm(
		Rule[models.MedicalRecord]{FieldTitle, func(r models.MedicalRecord) Validation {
			return First(Required(r.Title), MaxLength(r.Title, MaxTitleLength))
		}},
		Rule[models.MedicalRecord]{FieldDescription, func(r models.MedicalRecord) Validation {
			return MaxLength(r.Description, MaxDescriptionLength)
		}},
		Rule[models.MedicalRecord]{FieldRecordedAt, func(r models.MedicalRecord) Validation {
			if r.RecordedAt.IsZero() {
				return Invalid(MsgRequired)
			}
			return NotAfter(r.RecordedAt, now())
		}},
	)
}

// PostForm validates the configure-post screen. Content is required only
// when the post carries no attachment.
func PostForm() Form[models.Post] {
	return NewForm(
		Rule[models.Post]{FieldTitle, func(p models.Post) Validation {
			return First(Required(p.Title), MaxLength(p.Title, MaxTitleLength))
		}},
		Rule[models.Post]{FieldContent, func(p models.Post) Validation {
			if p.AttachmentRef == "" {
				if v := Required(p.Content); !v.Valid {
					return v
				}
			}
			return MaxLength(p.Content, MaxContentLength)
		}},
	)
}

// CommentForm validates a comment draft.
func CommentForm() Form[models.Comment] {
	return NewForm(
		Rule[models.Comment]{FieldContent, func(c models.Comment) Validation {
			return First(Required(c.Content), MaxLength(c.Content, MaxCommentLength))
		}},
	)
}

// MessageForm validates a chat message draft. Content is required only
// without an attachment.
func MessageForm() Form[models.MessageDraft] {
	return NewForm(
		Rule[models.MessageDraft]{FieldContent, func(m models.MessageDraft) Validation {
			if m.AttachmentRef == "" {
				if v := Required(m.Content); !v.Valid {
					return v
				}
			}
			return MaxLength(m.Content, MaxDescriptionLength)
		}},
	)
}

// ReviewForm validates the configure-review screen.
func ReviewForm() Form[models.Review] {
	return NewForm(
		Rule[models.Review]{FieldRating, func(r models.Review) Validation {
			return IntRange(r.Rating, 1, 5)
		}},
		Rule[models.Review]{FieldContent, func(r models.Review) Validation {
			return MaxLength(r.Content, MaxCommentLength)
		}},
	)
}

// LoginForm validates the login mode of the auth screen.
func LoginForm() Form[models.Credentials] {
	return NewForm(
		Rule[models.Credentials]{FieldEmail, func(c models.Credentials) Validation {
			return First(Required(c.Email), Email(c.Email))
		}},
		Rule[models.Credentials]{FieldPassword, func(c models.Credentials) Validation {
			return Required(c.Password)
		}},
	)
}

// RegisterForm validates the register mode of the auth screen.
func RegisterForm() Form[models.Registration] {
	return NewForm(
		Rule[models.Registration]{FieldName, func(r models.Registration) Validation {
			return First(Required(r.Name), MaxLength(r.Name, MaxNameLength))
		}},
		Rule[models.Registration]{FieldEmail, func(r models.Registration) Validation {
			return First(Required(r.Email), Email(strings.TrimSpace(r.Email)))
		}},
		Rule[models.Registration]{FieldPassword, func(r models.Registration) Validation {
			return First(Required(r.Password), MinLength(r.Password, MinPasswordLength))
		}},
		Rule[models.Registration]{FieldRole, func(r models.Registration) Validation {
			return OneOf(r.Role, models.RoleOwner, models.RoleWalker)
		}},
	)
}
