package viewmodel

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pet-walker/internal/service"
	"github.com/MKhiriev/go-pet-walker/internal/validators"
	"github.com/MKhiriev/go-pet-walker/models"
)

// Field-changed events shared by the configure screens.
type (
	TitleChanged       struct{ Title string }
	DescriptionChanged struct{ Description string }
	ContentChanged     struct{ Content string }
	NameChanged        struct{ Name string }

	// AttachmentChanged sets or, with an empty Reference, clears the
	// uploaded attachment.
	AttachmentChanged struct {
		Reference string
		Name      string
	}
)

// ── ConfigureAssignment ─────────────────────────────────────────────────────

// ConfigureAssignmentEvent is implemented by TitleChanged,
// DescriptionChanged, PetsChanged, ScheduleChanged, PriceChanged,
// LocationChanged, AttachmentChanged and Submit.
type ConfigureAssignmentEvent interface{ configureAssignmentEvent() }

type (
	PetsChanged     struct{ PetIDs []int64 }
	ScheduleChanged struct{ StartsAt, EndsAt time.Time }
	PriceChanged    struct{ Price int64 }
	LocationChanged struct{ Location models.Location }
)

func (TitleChanged) configureAssignmentEvent()       {}
func (DescriptionChanged) configureAssignmentEvent() {}
func (PetsChanged) configureAssignmentEvent()        {}
func (ScheduleChanged) configureAssignmentEvent()    {}
func (PriceChanged) configureAssignmentEvent()       {}
func (LocationChanged) configureAssignmentEvent()    {}
func (AttachmentChanged) configureAssignmentEvent()  {}

// ConfigureAssignment creates a new assignment or edits an existing one.
type ConfigureAssignment struct {
	configure[models.Assignment, models.Assignment]
}

// NewConfigureAssignment starts from initial; an initial ID other than 0
// edits that assignment instead of creating one.
func NewConfigureAssignment(ctx context.Context, initial models.Assignment, assignments service.AssignmentService, opts Options) *ConfigureAssignment {
	opts = opts.withDefaults()
	save := assignments.Create
	if initial.ID != 0 {
		save = assignments.Update
	}
	return &ConfigureAssignment{newConfigure(ctx, "configure_assignment",
		validators.AssignmentForm(opts.Now), initial, save, opts)}
}

// Handle dispatches ev.
func (vm *ConfigureAssignment) Handle(ev ConfigureAssignmentEvent) {
	switch e := ev.(type) {
	case TitleChanged:
		vm.edit(func(a *models.Assignment) { a.Title = e.Title }, validators.FieldTitle)
	case DescriptionChanged:
		vm.edit(func(a *models.Assignment) { a.Description = e.Description }, validators.FieldDescription)
	case PetsChanged:
		vm.edit(func(a *models.Assignment) { a.PetIDs = e.PetIDs }, validators.FieldPets)
	case ScheduleChanged:
		vm.edit(func(a *models.Assignment) { a.StartsAt, a.EndsAt = e.StartsAt, e.EndsAt },
			validators.FieldStartsAt, validators.FieldEndsAt)
	case PriceChanged:
		vm.edit(func(a *models.Assignment) { a.Price = e.Price }, validators.FieldPrice)
	case LocationChanged:
		vm.edit(func(a *models.Assignment) { a.Location = e.Location })
	case AttachmentChanged:
		vm.edit(func(a *models.Assignment) { a.AttachmentRef, a.AttachmentName = e.Reference, e.Name })
	case Submit:
		vm.send()
	}
}

// ── ConfigurePet ────────────────────────────────────────────────────────────

// ConfigurePetEvent is implemented by NameChanged, SpeciesChanged,
// BreedChanged, BirthDateChanged, WeightChanged, NotesChanged and Submit.
type ConfigurePetEvent interface{ configurePetEvent() }

type (
	SpeciesChanged struct{ Species models.Species }
	BreedChanged   struct{ Breed string }
	// BirthDateChanged with a nil BirthDate clears it.
	BirthDateChanged struct{ BirthDate *time.Time }
	WeightChanged    struct{ WeightKg float64 }
	NotesChanged     struct{ Notes string }
)

func (NameChanged) configurePetEvent()      {}
func (SpeciesChanged) configurePetEvent()   {}
func (BreedChanged) configurePetEvent()     {}
func (BirthDateChanged) configurePetEvent() {}
func (WeightChanged) configurePetEvent()    {}
func (NotesChanged) configurePetEvent()     {}

// ConfigurePet creates or edits a pet profile.
type ConfigurePet struct {
	configure[models.Pet, models.Pet]
}

// NewConfigurePet starts from initial; an initial ID other than 0 edits
// that pet.
func NewConfigurePet(ctx context.Context, initial models.Pet, pets service.PetService, opts Options) *ConfigurePet {
	opts = opts.withDefaults()
	save := pets.Create
	if initial.ID != 0 {
		save = pets.Update
	}
	return &ConfigurePet{newConfigure(ctx, "configure_pet", validators.PetForm(opts.Now), initial, save, opts)}
}

// Handle dispatches ev.
func (vm *ConfigurePet) Handle(ev ConfigurePetEvent) {
	switch e := ev.(type) {
	case NameChanged:
		vm.edit(func(p *models.Pet) { p.Name = e.Name }, validators.FieldName)
	case SpeciesChanged:
		vm.edit(func(p *models.Pet) { p.Species = e.Species }, validators.FieldSpecies)
	case BreedChanged:
		vm.edit(func(p *models.Pet) { p.Breed = e.Breed }, validators.FieldBreed)
	case BirthDateChanged:
		vm.edit(func(p *models.Pet) { p.BirthDate = e.BirthDate }, validators.FieldBirthDate)
	case WeightChanged:
		vm.edit(func(p *models.Pet) { p.WeightKg = e.WeightKg }, validators.FieldWeight)
	case NotesChanged:
		vm.edit(func(p *models.Pet) { p.Notes = e.Notes }, validators.FieldNotes)
	case Submit:
		vm.send()
	}
}

// ── ConfigureMedicalRecord ──────────────────────────────────────────────────

// ConfigureMedicalRecordEvent is implemented by TitleChanged,
// DescriptionChanged, RecordedAtChanged, AttachmentChanged and Submit.
type ConfigureMedicalRecordEvent interface{ configureMedicalRecordEvent() }

type RecordedAtChanged struct{ RecordedAt time.Time }

func (TitleChanged) configureMedicalRecordEvent()       {}
func (DescriptionChanged) configureMedicalRecordEvent() {}
func (RecordedAtChanged) configureMedicalRecordEvent()  {}
func (AttachmentChanged) configureMedicalRecordEvent()  {}
func (Submit) configureMedicalRecordEvent()             {}

// ConfigureMedicalRecord adds a medical record to a pet.
type ConfigureMedicalRecord struct {
	configure[models.MedicalRecord, models.MedicalRecord]
}

// NewConfigureMedicalRecord creates an empty record form for petID.
func NewConfigureMedicalRecord(ctx context.Context, petID int64, pets service.PetService, opts Options) *ConfigureMedicalRecord {
	opts = opts.withDefaults()
	return &ConfigureMedicalRecord{newConfigure(ctx, "configure_medical_record",
		validators.MedicalRecordForm(opts.Now), models.MedicalRecord{PetID: petID}, pets.AddMedicalRecord, opts)}
}

// Handle dispatches ev.
func (vm *ConfigureMedicalRecord) Handle(ev ConfigureMedicalRecordEvent) {
	switch e := ev.(type) {
	case TitleChanged:
		vm.edit(func(r *models.MedicalRecord) { r.Title = e.Title }, validators.FieldTitle)
	case DescriptionChanged:
		vm.edit(func(r *models.MedicalRecord) { r.Description = e.Description }, validators.FieldDescription)
	case RecordedAtChanged:
		vm.edit(func(r *models.MedicalRecord) { r.RecordedAt = e.RecordedAt }, validators.FieldRecordedAt)
	case AttachmentChanged:
		vm.edit(func(r *models.MedicalRecord) { r.AttachmentRef, r.AttachmentName = e.Reference, e.Name })
	case Submit:
		vm.send()
	}
}

// ── ConfigurePost ───────────────────────────────────────────────────────────

// ConfigurePostEvent is implemented by TitleChanged, ContentChanged,
// AttachmentChanged and Submit.
type ConfigurePostEvent interface{ configurePostEvent() }

func (TitleChanged) configurePostEvent()      {}
func (ContentChanged) configurePostEvent()    {}
func (AttachmentChanged) configurePostEvent() {}

// ConfigurePost writes a community post. The text is optional when an
// attachment is present.
type ConfigurePost struct {
	configure[models.Post, models.Post]
}

// NewConfigurePost creates an empty post form.
func NewConfigurePost(ctx context.Context, posts service.PostService, opts Options) *ConfigurePost {
	return &ConfigurePost{newConfigure(ctx, "configure_post", validators.PostForm(), models.Post{}, posts.Create, opts)}
}

// Handle dispatches ev.
func (vm *ConfigurePost) Handle(ev ConfigurePostEvent) {
	switch e := ev.(type) {
	case TitleChanged:
		vm.edit(func(p *models.Post) { p.Title = e.Title }, validators.FieldTitle)
	case ContentChanged:
		vm.edit(func(p *models.Post) { p.Content = e.Content }, validators.FieldContent)
	case AttachmentChanged:
		vm.edit(func(p *models.Post) { p.AttachmentRef, p.AttachmentName = e.Reference, e.Name }, validators.FieldContent)
	case Submit:
		vm.send()
	}
}

// ── ConfigureReview ─────────────────────────────────────────────────────────

// ConfigureReviewEvent is implemented by RatingChanged, ContentChanged and
// Submit.
type ConfigureReviewEvent interface{ configureReviewEvent() }

type RatingChanged struct{ Rating int }

func (RatingChanged) configureReviewEvent()  {}
func (ContentChanged) configureReviewEvent() {}

// ConfigureReview reviews the other party of a finished assignment.
type ConfigureReview struct {
	configure[models.Review, models.Review]
}

// NewConfigureReview creates a review form for subjectID about assignmentID.
func NewConfigureReview(ctx context.Context, assignmentID, subjectID int64, reviews service.ReviewService, opts Options) *ConfigureReview {
	initial := models.Review{AssignmentID: assignmentID, SubjectID: subjectID}
	return &ConfigureReview{newConfigure(ctx, "configure_review", validators.ReviewForm(), initial, reviews.Create, opts)}
}

// Handle dispatches ev.
func (vm *ConfigureReview) Handle(ev ConfigureReviewEvent) {
	switch e := ev.(type) {
	case RatingChanged:
		vm.edit(func(r *models.Review) { r.Rating = e.Rating }, validators.FieldRating)
	case ContentChanged:
		vm.edit(func(r *models.Review) { r.Content = e.Content }, validators.FieldContent)
	case Submit:
		vm.send()
	}
}
