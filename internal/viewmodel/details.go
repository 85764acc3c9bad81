package viewmodel

import (
	"context"

	"github.com/MKhiriev/go-pet-walker/internal/async"
	"github.com/MKhiriev/go-pet-walker/internal/paging"
	"github.com/MKhiriev/go-pet-walker/internal/service"
	"github.com/MKhiriev/go-pet-walker/internal/validators"
	"github.com/MKhiriev/go-pet-walker/models"
)

// ── PostDetail ──────────────────────────────────────────────────────────────

// PostDetailEvent is implemented by LoadPage, Refresh, CommentChanged,
// SubmitComment and DownloadAttachment.
type PostDetailEvent interface{ postDetailEvent() }

// CommentChanged replaces the comment draft.
type CommentChanged struct{ Content string }

// SubmitComment posts the comment draft.
type SubmitComment struct{}

func (CommentChanged) postDetailEvent() {}
func (SubmitComment) postDetailEvent()  {}

// PostDetailState is the state of a post with its comments.
type PostDetailState struct {
	PostID   int64
	Post     async.Result[models.Post]
	Comments paging.State[models.Comment]
	Comment  FormState[models.Comment]
	Submit   Op[models.Comment]
	Download Op[string]
}

// PostDetail shows a community post, its comments and a comment box.
type PostDetail struct {
	base[PostDetailState]
	posts     service.PostService
	downloads Downloader
	comments  *pager[models.Comment]
	form      validators.Form[models.Comment]
	submit    chan struct{}
}

// NewPostDetail creates the view model and loads the post and the first page
// of comments.
func NewPostDetail(ctx context.Context, postID int64, posts service.PostService, downloads Downloader, opts Options) *PostDetail {
	form := validators.CommentForm()
	initial := PostDetailState{
		PostID:  postID,
		Comment: newFormState(form, models.Comment{PostID: postID}),
	}

	vm := &PostDetail{
		base:      newBase(ctx, "post_detail", initial, opts),
		posts:     posts,
		downloads: downloads,
		form:      form,
		submit:    make(chan struct{}, 1),
	}
	vm.comments = newPager(&vm.base,
		func(ctx context.Context, page models.PageRequest) (models.Paged[models.Comment], error) {
			return posts.Comments(ctx, postID, page)
		},
		func(s *PostDetailState, st paging.State[models.Comment]) { s.Comments = st },
	)
	vm.loadPost()
	vm.comments.load(1)
	return vm
}

// Handle dispatches ev.
func (vm *PostDetail) Handle(ev PostDetailEvent) {
	switch e := ev.(type) {
	case LoadPage:
		vm.comments.load(e.Page)
	case Refresh:
		vm.loadPost()
		vm.comments.refresh()
	case CommentChanged:
		vm.state.update(func(s *PostDetailState) {
			s.Comment = s.Comment.edit(vm.form, func(c *models.Comment) { c.Content = e.Content }, validators.FieldContent)
		})
	case SubmitComment:
		vm.submitComment()
	case DownloadAttachment:
		vm.download(vm.downloads, e, func(s *PostDetailState, op Op[string]) { s.Download = op })
	}
}

func (vm *PostDetail) loadPost() {
	fetch(&vm.base, "PostDetail.loadPost",
		func(ctx context.Context) (models.Post, error) { return vm.posts.Get(ctx, vm.State().PostID) },
		func(s *PostDetailState, r async.Result[models.Post]) { s.Post = r },
	)
}

func (vm *PostDetail) submitComment() {
	vm.scope.launch(func(ctx context.Context) {
		if !lock(ctx, vm.submit) {
			return
		}
		defer unlock(vm.submit)

		var draft FormState[models.Comment]
		vm.state.update(func(s *PostDetailState) {
			s.Comment = s.Comment.touchAll(vm.form)
			draft = s.Comment
			if draft.CanSubmit {
				s.Submit = startOp[models.Comment]()
			}
		})
		if !draft.CanSubmit {
			return
		}

		comment, err := vm.posts.AddComment(ctx, draft.Value)
		if ctx.Err() != nil {
			return
		}
		vm.logFailure(ctx, "PostDetail.submitComment", err)

		vm.state.update(func(s *PostDetailState) {
			s.Submit = finishOp(comment, err)
			if err == nil {
				s.Comment = newFormState(vm.form, models.Comment{PostID: s.PostID})
			}
		})
		if err == nil {
			vm.comments.refresh()
		}
	})
}

// ── PetProfile ──────────────────────────────────────────────────────────────

// PetProfileEvent is implemented by LoadPage, Refresh, DownloadRecord and
// DownloadAttachment.
type PetProfileEvent interface{ petProfileEvent() }

// DownloadRecord saves the attachment of a medical record.
type DownloadRecord struct{ Record models.MedicalRecord }

func (DownloadRecord) petProfileEvent() {}

// PetProfileState is the state of a pet profile with its medical records.
type PetProfileState struct {
	PetID    int64
	Pet      async.Result[models.Pet]
	Records  paging.State[models.MedicalRecord]
	Download Op[string]
}

// PetProfile shows one pet and its medical history.
type PetProfile struct {
	base[PetProfileState]
	pets      service.PetService
	downloads Downloader
	records   *pager[models.MedicalRecord]
}

// NewPetProfile creates the view model and loads the pet and the first page
// of medical records.
func NewPetProfile(ctx context.Context, petID int64, pets service.PetService, downloads Downloader, opts Options) *PetProfile {
	vm := &PetProfile{
		base:      newBase(ctx, "pet_profile", PetProfileState{PetID: petID}, opts),
		pets:      pets,
		downloads: downloads,
	}
	vm.records = newPager(&vm.base,
		func(ctx context.Context, page models.PageRequest) (models.Paged[models.MedicalRecord], error) {
			return pets.MedicalRecords(ctx, petID, page)
		},
		func(s *PetProfileState, st paging.State[models.MedicalRecord]) { s.Records = st },
	)
	vm.loadPet()
	vm.records.load(1)
	return vm
}

// Handle dispatches ev.
func (vm *PetProfile) Handle(ev PetProfileEvent) {
	switch e := ev.(type) {
	case LoadPage:
		vm.records.load(e.Page)
	case Refresh:
		vm.loadPet()
		vm.records.refresh()
	case DownloadRecord:
		vm.Handle(DownloadAttachment{Reference: e.Record.AttachmentRef, Name: e.Record.AttachmentName})
	case DownloadAttachment:
		vm.download(vm.downloads, e, func(s *PetProfileState, op Op[string]) { s.Download = op })
	}
}

func (vm *PetProfile) loadPet() {
	fetch(&vm.base, "PetProfile.loadPet",
		func(ctx context.Context) (models.Pet, error) { return vm.pets.Get(ctx, vm.State().PetID) },
		func(s *PetProfileState, r async.Result[models.Pet]) { s.Pet = r },
	)
}
