package event

// Patch is a partial update of an Event.
//
// Each non-nil field overwrites the stored value wholesale; nil fields are
// left untouched. Slices replace the old value, they are never merged.
// EventID and CreatedAt are not patchable.
//
// EventDate and MessageID use a double pointer: a non-nil outer pointer to
// a nil inner pointer clears the field.
type Patch struct {
	CreatorID   *int64
	Title       *string
	Description *string
	MaxPlayers  *int
	Players     *[]int64
	EventDate   **string
	MediaFiles  *[]string
	MessageID   **int64
	Autodelete  *bool
}

// NewPatch returns an empty patch.
func NewPatch() *Patch {
	return &Patch{}
}

// SetCreatorID reassigns the event's creator.
func (p *Patch) SetCreatorID(id int64) *Patch {
	p.CreatorID = &id
	return p
}

// SetTitle sets the title, NFC-normalized like Draft.Build.
func (p *Patch) SetTitle(title string) *Patch {
	title = NormalizeText(title)
	p.Title = &title
	return p
}

// SetDescription sets the description, NFC-normalized like Draft.Build.
func (p *Patch) SetDescription(desc string) *Patch {
	desc = NormalizeText(desc)
	p.Description = &desc
	return p
}

// SetMaxPlayers sets the advisory capacity. Existing players are kept even
// if the roster now exceeds it.
func (p *Patch) SetMaxPlayers(n int) *Patch {
	p.MaxPlayers = &n
	return p
}

// SetPlayers replaces the whole roster. No duplicate check is made.
func (p *Patch) SetPlayers(players []int64) *Patch {
	cp := append([]int64{}, players...)
	p.Players = &cp
	return p
}

// SetEventDate sets the event date. The string is stored as given.
func (p *Patch) SetEventDate(date string) *Patch {
	d := &date
	p.EventDate = &d
	return p
}

// ClearEventDate writes event_date as null.
func (p *Patch) ClearEventDate() *Patch {
	var d *string
	p.EventDate = &d
	return p
}

// SetMediaFiles replaces the whole media list.
func (p *Patch) SetMediaFiles(files []string) *Patch {
	cp := append([]string{}, files...)
	p.MediaFiles = &cp
	return p
}

// SetMessageID sets the correlated chat message id.
func (p *Patch) SetMessageID(id int64) *Patch {
	m := &id
	p.MessageID = &m
	return p
}

// ClearMessageID writes message_id as null.
func (p *Patch) ClearMessageID() *Patch {
	var m *int64
	p.MessageID = &m
	return p
}

// SetAutodelete sets the automatic cleanup flag.
func (p *Patch) SetAutodelete(b bool) *Patch {
	p.Autodelete = &b
	return p
}

// Empty reports whether the patch sets no field.
func (p *Patch) Empty() bool {
	return p == nil || (p.CreatorID == nil && p.Title == nil && p.Description == nil &&
		p.MaxPlayers == nil && p.Players == nil && p.EventDate == nil &&
		p.MediaFiles == nil && p.MessageID == nil && p.Autodelete == nil)
}

// Fields returns the JSON names of the fields set in the patch, in record order.
func (p *Patch) Fields() []string {
	if p == nil {
		return nil
	}
	var out []string
	add := func(set bool, name string) {
		if set {
			out = append(out, name)
		}
	}
	add(p.CreatorID != nil, "creator_id")
	add(p.Title != nil, "title")
	add(p.Description != nil, "description")
	add(p.MaxPlayers != nil, "max_players")
	add(p.Players != nil, "players")
	add(p.EventDate != nil, "event_date")
	add(p.MediaFiles != nil, "media_files")
	add(p.MessageID != nil, "message_id")
	add(p.Autodelete != nil, "autodelete")
	return out
}

// Apply overwrites the fields of e that are set in the patch.
func (p *Patch) Apply(e *Event) {
	if p == nil {
		return
	}
	if p.CreatorID != nil {
		e.CreatorID = *p.CreatorID
	}
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.MaxPlayers != nil {
		e.MaxPlayers = *p.MaxPlayers
	}
	if p.Players != nil {
		e.Players = append([]int64{}, (*p.Players)...)
	}
	if p.EventDate != nil {
		e.EventDate = copyString(*p.EventDate)
	}
	if p.MediaFiles != nil {
		e.MediaFiles = append([]string{}, (*p.MediaFiles)...)
	}
	if p.MessageID != nil {
		e.MessageID = copyInt64(*p.MessageID)
	}
	if p.Autodelete != nil {
		e.Autodelete = *p.Autodelete
	}
}
