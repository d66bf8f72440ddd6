package schema

import "time"

type SourceKind string

type SurveyMode string

type CreativeType string

type Cadence string

type CampaignStatus string

const (
	SourceUnset  SourceKind = ""
	SourceSurvey SourceKind = "survey"
	SourceUpload SourceKind = "upload"
	SourceEDDM   SourceKind = "eddm"
)

const (
	SurveyModeB2B SurveyMode = "B2B"
	SurveyModeB2C SurveyMode = "B2C"
)

const (
	CreativeUpload CreativeType = "upload"
	CreativeCustom CreativeType = "custom"
)

const (
	CadenceSingle Cadence = "single"
	CadenceMulti  Cadence = "multi"
)

const (
	CampaignStatusSubmitted CampaignStatus = "submitted"
)

// Default map center (Norfolk, VA) and radius in miles.
const (
	DefaultMapLat    = 36.8460
	DefaultMapLng    = -76.2881
	DefaultMapRadius = 1.0
)

// UploadedListRef points at a customer list the user attached in chat.
// The payload itself stays with Telegram until submission.
type UploadedListRef struct {
	Name        string `json:"name"`
	FileID      string `json:"file_id"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// CampaignDraft accumulates everything the user enters across wizard steps.
// Fields belonging to inactive source branches may stay populated; only the
// active branch is meaningful at submission.
type CampaignDraft struct {
	BusinessName string `json:"business_name"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`

	Source SourceKind `json:"source"`

	SurveyMode       SurveyMode                  `json:"survey_mode"`
	SurveySelections map[SurveyCategory][]string `json:"survey_selections,omitempty"`

	MapLat    float64 `json:"map_lat"`
	MapLng    float64 `json:"map_lng"`
	MapRadius float64 `json:"map_radius"`

	UploadedList *UploadedListRef `json:"uploaded_list,omitempty"`

	CreativeType CreativeType `json:"creative_type"`
	MailerFormat string       `json:"mailer_format"`
	Quantity     int          `json:"quantity"`

	Cadence   Cadence `json:"cadence"`
	StartDate string  `json:"start_date"`
}

func DefaultDraft() CampaignDraft {
	return CampaignDraft{
		Source:       SourceUnset,
		SurveyMode:   SurveyModeB2B,
		MapLat:       DefaultMapLat,
		MapLng:       DefaultMapLng,
		MapRadius:    DefaultMapRadius,
		CreativeType: CreativeUpload,
		Cadence:      CadenceSingle,
	}
}

// DraftPatch is a shallow partial update: only non-nil fields are applied.
// SurveySelections replaces whole category sets, never merges into them.
type DraftPatch struct {
	BusinessName *string
	FirstName    *string
	LastName     *string
	Email        *string

	Source *SourceKind

	SurveyMode       *SurveyMode
	SurveySelections map[SurveyCategory][]string

	MapLat    *float64
	MapLng    *float64
	MapRadius *float64

	UploadedList *UploadedListRef

	CreativeType *CreativeType
	MailerFormat *string
	Quantity     *int

	Cadence   *Cadence
	StartDate *string
}

func (d *CampaignDraft) Apply(p DraftPatch) {
	if p.BusinessName != nil {
		d.BusinessName = *p.BusinessName
	}
	if p.FirstName != nil {
		d.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		d.LastName = *p.LastName
	}
	if p.Email != nil {
		d.Email = *p.Email
	}
	if p.Source != nil {
		d.Source = *p.Source
	}
	if p.SurveyMode != nil {
		d.SurveyMode = *p.SurveyMode
	}
	for category, items := range p.SurveySelections {
		if d.SurveySelections == nil {
			d.SurveySelections = make(map[SurveyCategory][]string)
		}
		d.SurveySelections[category] = items
	}
	if p.MapLat != nil {
		d.MapLat = *p.MapLat
	}
	if p.MapLng != nil {
		d.MapLng = *p.MapLng
	}
	if p.MapRadius != nil {
		d.MapRadius = *p.MapRadius
	}
	if p.UploadedList != nil {
		d.UploadedList = p.UploadedList
	}
	if p.CreativeType != nil {
		d.CreativeType = *p.CreativeType
	}
	if p.MailerFormat != nil {
		d.MailerFormat = *p.MailerFormat
	}
	if p.Quantity != nil {
		d.Quantity = *p.Quantity
	}
	if p.Cadence != nil {
		d.Cadence = *p.Cadence
	}
	if p.StartDate != nil {
		d.StartDate = *p.StartDate
	}
}

// ToggleSurveySelection removes the item from the category set when present,
// appends it otherwise. Sets never contain duplicates.
func (d *CampaignDraft) ToggleSurveySelection(category SurveyCategory, item string) {
	current := d.SurveySelections[category]
	for i, v := range current {
		if v == item {
			d.SurveySelections[category] = append(current[:i:i], current[i+1:]...)
			return
		}
	}
	if d.SurveySelections == nil {
		d.SurveySelections = make(map[SurveyCategory][]string)
	}
	d.SurveySelections[category] = append(current, item)
}

// UploadedFileMeta is the retrieval metadata patched into a stored campaign
// after its list file lands in object storage.
type UploadedFileMeta struct {
	Name        string `firestore:"name" json:"name"`
	Path        string `firestore:"path" json:"path"`
	DownloadURL string `firestore:"downloadUrl" json:"download_url"`
	ContentType string `firestore:"contentType" json:"content_type"`
	Size        int64  `firestore:"size" json:"size"`
}

// Campaign is the persisted submission record: a snapshot of the draft minus
// the raw file payload, plus server-assigned bookkeeping.
type Campaign struct {
	BusinessName string `firestore:"businessName"`
	FirstName    string `firestore:"firstName"`
	LastName     string `firestore:"lastName"`
	Email        string `firestore:"email"`

	Source SourceKind `firestore:"source"`

	SurveyMode       SurveyMode          `firestore:"surveyMode"`
	SurveySelections map[string][]string `firestore:"surveySelections,omitempty"`

	MapLat    float64 `firestore:"mapLat"`
	MapLng    float64 `firestore:"mapLng"`
	MapRadius float64 `firestore:"mapRadius"`

	UploadedFileName string `firestore:"uploadedFileName,omitempty"`

	CreativeType CreativeType `firestore:"creativeType"`
	MailerFormat string       `firestore:"mailerFormat"`
	Quantity     int          `firestore:"quantity"`

	Cadence   Cadence `firestore:"cadence"`
	StartDate string  `firestore:"startDate"`

	Status    CampaignStatus    `firestore:"status"`
	CreatedAt time.Time         `firestore:"createdAt,serverTimestamp"`
	ListFile  *UploadedFileMeta `firestore:"uploadedListFile,omitempty"`
}

// NewCampaign snapshots a draft for persistence. The list payload handle is
// reduced to its file name; the binary travels through object storage instead.
func NewCampaign(d CampaignDraft) Campaign {
	c := Campaign{
		BusinessName: d.BusinessName,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Email:        d.Email,
		Source:       d.Source,
		SurveyMode:   d.SurveyMode,
		MapLat:       d.MapLat,
		MapLng:       d.MapLng,
		MapRadius:    d.MapRadius,
		CreativeType: d.CreativeType,
		MailerFormat: d.MailerFormat,
		Quantity:     d.Quantity,
		Cadence:      d.Cadence,
		StartDate:    d.StartDate,
		Status:       CampaignStatusSubmitted,
	}
	if len(d.SurveySelections) > 0 {
		c.SurveySelections = make(map[string][]string, len(d.SurveySelections))
		for category, items := range d.SurveySelections {
			c.SurveySelections[string(category)] = items
		}
	}
	if d.UploadedList != nil {
		c.UploadedFileName = d.UploadedList.Name
	}
	return c
}
