package viewmodel

// LoadPage asks a paged list for page Page. Pages below 1 load page 1.
type LoadPage struct {
	Page int
}

// Refresh reloads a screen from its first page.
type Refresh struct{}

// Submit sends a configure form.
type Submit struct{}

// DownloadAttachment saves the attachment Reference under Name.
type DownloadAttachment struct {
	Reference string
	Name      string
}

func (LoadPage) assignedPetsEvent()    {}
func (LoadPage) channelEvent()         {}
func (LoadPage) postDetailEvent()      {}
func (LoadPage) featuredWalkersEvent() {}
func (LoadPage) recruitmentsEvent()    {}
func (LoadPage) petProfileEvent()      {}
func (LoadPage) walkerProfileEvent()   {}
func (LoadPage) assignmentsEvent()     {}

func (Refresh) assignedPetsEvent()     {}
func (Refresh) channelEvent()          {}
func (Refresh) postDetailEvent()       {}
func (Refresh) featuredWalkersEvent()  {}
func (Refresh) recruitmentsEvent()     {}
func (Refresh) assignmentDetailEvent() {}
func (Refresh) petProfileEvent()       {}
func (Refresh) mapEvent()              {}
func (Refresh) walkerProfileEvent()    {}
func (Refresh) assignmentsEvent()      {}

func (Submit) configureAssignmentEvent() {}
func (Submit) configurePetEvent()        {}
func (Submit) configurePostEvent()       {}
func (Submit) configureReviewEvent()     {}
func (Submit) authEvent()                {}

func (DownloadAttachment) channelEvent()          {}
func (DownloadAttachment) assignmentDetailEvent() {}
func (DownloadAttachment) petProfileEvent()       {}
func (DownloadAttachment) postDetailEvent()       {}
