package reliefweb

// Field schemas for each resource exposed by the API. Every field is a
// pointer or slice: profiles and include/exclude selection mean any field
// can legitimately be absent, and absence must stay distinguishable from an
// empty value.

// Country is a country associated with a record.
type Country struct {
	// Href links to the API resource for this country.
	Href *string `json:"href,omitempty" yaml:"href,omitempty"`
	// ID is the unique identifier of the country.
	ID *int64 `json:"id,omitempty" yaml:"id,omitempty"`
	// Name is the full country name.
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`
	// Shortname is the abbreviated country name.
	Shortname *string `json:"shortname,omitempty" yaml:"shortname,omitempty"`
	// ISO3 is the ISO 3166-1 alpha-3 code.
	ISO3 *string `json:"iso3,omitempty" yaml:"iso3,omitempty"`
	// Location is the geographical position of the country.
	Location *Location `json:"location,omitempty" yaml:"location,omitempty"`
	// Primary indicates the primary country for the record.
	Primary *bool `json:"primary,omitempty" yaml:"primary,omitempty"`
}

// Location is a latitude/longitude position.
type Location struct {
	Lat *float64 `json:"lat,omitempty" yaml:"lat,omitempty"`
	Lon *float64 `json:"lon,omitempty" yaml:"lon,omitempty"`
}

// DocumentDates holds the dates associated with a record.
type DocumentDates struct {
	// Closing is the closing date, where applicable.
	Closing *string `json:"closing,omitempty" yaml:"closing,omitempty"`
	// Original is the original date of the document.
	Original *string `json:"original,omitempty" yaml:"original,omitempty"`
	// Changed is when the record was last modified.
	Changed *string `json:"changed,omitempty" yaml:"changed,omitempty"`
	// Created is when the record was created.
	Created *string `json:"created,omitempty" yaml:"created,omitempty"`
}

// Descriptor is a generic id/name pair used for themes, formats, types, and
// similar taxonomy terms.
type Descriptor struct {
	ID   *int64  `json:"id,omitempty"   yaml:"id,omitempty"`
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Language is a language associated with a record.
type Language struct {
	ID   *int64  `json:"id,omitempty"   yaml:"id,omitempty"`
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`
	Code *string `json:"code,omitempty" yaml:"code,omitempty"`
}

// Source is an organization or entity related to a record.
type Source struct {
	// Href links to the API resource for this source.
	Href *string `json:"href,omitempty" yaml:"href,omitempty"`
	// ID is the unique identifier of the source.
	ID *int64 `json:"id,omitempty" yaml:"id,omitempty"`
	// Name is the short name of the source.
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`
	// Shortname is an alternative abbreviation.
	Shortname *string `json:"shortname,omitempty" yaml:"shortname,omitempty"`
	// Longname is the full name of the source.
	Longname *string `json:"longname,omitempty" yaml:"longname,omitempty"`
	// SpanishName is the Spanish name, if one exists.
	SpanishName *string `json:"spanish_name,omitempty" yaml:"spanish_name,omitempty"`
	// Homepage is the source's homepage URL.
	Homepage *string `json:"homepage,omitempty" yaml:"homepage,omitempty"`
	// Type categorizes the source (NGO, government, media, ...).
	Type *Descriptor `json:"type,omitempty" yaml:"type,omitempty"`
}

// ReportFields is the field schema of the "reports" resource.
type ReportFields struct {
	ID             *int64         `json:"id,omitempty"              yaml:"id,omitempty"`
	Title          *string        `json:"title,omitempty"           yaml:"title,omitempty"`
	Status         *string        `json:"status,omitempty"          yaml:"status,omitempty"`
	Body           *string        `json:"body,omitempty"            yaml:"body,omitempty"`
	Origin         *string        `json:"origin,omitempty"          yaml:"origin,omitempty"`
	PrimaryCountry *Country       `json:"primary_country,omitempty" yaml:"primary_country,omitempty"`
	Country        []Country      `json:"country,omitempty"         yaml:"country,omitempty"`
	Source         []Source       `json:"source,omitempty"          yaml:"source,omitempty"`
	Language       []Language     `json:"language,omitempty"        yaml:"language,omitempty"`
	Theme          []Descriptor   `json:"theme,omitempty"           yaml:"theme,omitempty"`
	Format         []Descriptor   `json:"format,omitempty"          yaml:"format,omitempty"`
	URL            *string        `json:"url,omitempty"             yaml:"url,omitempty"`
	URLAlias       *string        `json:"url_alias,omitempty"       yaml:"url_alias,omitempty"`
	BodyHTML       *string        `json:"body-html,omitempty"       yaml:"body_html,omitempty"`
	Date           *DocumentDates `json:"date,omitempty"            yaml:"date,omitempty"`
}

// DisasterType categorizes a disaster.
type DisasterType struct {
	ID      *int64  `json:"id,omitempty"      yaml:"id,omitempty"`
	Name    *string `json:"name,omitempty"    yaml:"name,omitempty"`
	Code    *string `json:"code,omitempty"    yaml:"code,omitempty"`
	Primary *bool   `json:"primary,omitempty" yaml:"primary,omitempty"`
}

// DisasterProfile is the optional overview section of a disaster record.
// The API serializes these keys in kebab-case.
type DisasterProfile struct {
	Overview     *string `json:"overview,omitempty"      yaml:"overview,omitempty"`
	OverviewHTML *string `json:"overview-html,omitempty" yaml:"overview_html,omitempty"`
}

// DisasterFields is the field schema of the "disasters" resource.
type DisasterFields struct {
	ID              *int64           `json:"id,omitempty"               yaml:"id,omitempty"`
	Name            *string          `json:"name,omitempty"             yaml:"name,omitempty"`
	Description     *string          `json:"description,omitempty"      yaml:"description,omitempty"`
	Status          *string          `json:"status,omitempty"           yaml:"status,omitempty"`
	Glide           *string          `json:"glide,omitempty"            yaml:"glide,omitempty"`
	PrimaryCountry  *Country         `json:"primary_country,omitempty"  yaml:"primary_country,omitempty"`
	PrimaryType     *DisasterType    `json:"primary_type,omitempty"     yaml:"primary_type,omitempty"`
	Country         []Country        `json:"country,omitempty"          yaml:"country,omitempty"`
	Type            []DisasterType   `json:"type,omitempty"             yaml:"type,omitempty"`
	URL             *string          `json:"url,omitempty"              yaml:"url,omitempty"`
	URLAlias        *string          `json:"url_alias,omitempty"        yaml:"url_alias,omitempty"`
	Date            *DocumentDates   `json:"date,omitempty"             yaml:"date,omitempty"`
	DescriptionHTML *string          `json:"description-html,omitempty" yaml:"description_html,omitempty"`
	Profile         *DisasterProfile `json:"profile,omitempty"          yaml:"profile,omitempty"`
}

// CountryFields is the field schema of the "countries" resource.
type CountryFields struct {
	ID        *int64         `json:"id,omitempty"        yaml:"id,omitempty"`
	Name      *string        `json:"name,omitempty"      yaml:"name,omitempty"`
	Status    *string        `json:"status,omitempty"    yaml:"status,omitempty"`
	Shortname *string        `json:"shortname,omitempty" yaml:"shortname,omitempty"`
	ISO3      *string        `json:"iso3,omitempty"      yaml:"iso3,omitempty"`
	URL       *string        `json:"url,omitempty"       yaml:"url,omitempty"`
	URLAlias  *string        `json:"url_alias,omitempty" yaml:"url_alias,omitempty"`
	Date      *DocumentDates `json:"date,omitempty"      yaml:"date,omitempty"`
	Location  *Location      `json:"location,omitempty"  yaml:"location,omitempty"`
}

// JobFields is the field schema of the "jobs" resource.
type JobFields struct {
	ID               *int64         `json:"id,omitempty"                yaml:"id,omitempty"`
	Title            *string        `json:"title,omitempty"             yaml:"title,omitempty"`
	Status           *string        `json:"status,omitempty"            yaml:"status,omitempty"`
	Body             *string        `json:"body,omitempty"              yaml:"body,omitempty"`
	HowToApply       *string        `json:"how_to_apply,omitempty"      yaml:"how_to_apply,omitempty"`
	Source           []Source       `json:"source,omitempty"            yaml:"source,omitempty"`
	Theme            []Descriptor   `json:"theme,omitempty"             yaml:"theme,omitempty"`
	Type             []Descriptor   `json:"type,omitempty"              yaml:"type,omitempty"`
	Experience       []Descriptor   `json:"experience,omitempty"        yaml:"experience,omitempty"`
	CareerCategories []Descriptor   `json:"career_categories,omitempty" yaml:"career_categories,omitempty"`
	URL              *string        `json:"url,omitempty"               yaml:"url,omitempty"`
	URLAlias         *string        `json:"url_alias,omitempty"         yaml:"url_alias,omitempty"`
	BodyHTML         *string        `json:"body-html,omitempty"         yaml:"body_html,omitempty"`
	Date             *DocumentDates `json:"date,omitempty"              yaml:"date,omitempty"`
}

// TrainingFields is the field schema of the "training" resource.
type TrainingFields struct {
	ID               *int64         `json:"id,omitempty"                yaml:"id,omitempty"`
	Title            *string        `json:"title,omitempty"             yaml:"title,omitempty"`
	Status           *string        `json:"status,omitempty"            yaml:"status,omitempty"`
	Cost             *string        `json:"cost,omitempty"              yaml:"cost,omitempty"`
	Body             *string        `json:"body,omitempty"              yaml:"body,omitempty"`
	EventURL         *string        `json:"event_url,omitempty"         yaml:"event_url,omitempty"`
	HowToRegister    *string        `json:"how_to_register,omitempty"   yaml:"how_to_register,omitempty"`
	Source           []Source       `json:"source,omitempty"            yaml:"source,omitempty"`
	Language         []Language     `json:"language,omitempty"          yaml:"language,omitempty"`
	Theme            []Descriptor   `json:"theme,omitempty"             yaml:"theme,omitempty"`
	Type             []Descriptor   `json:"type,omitempty"              yaml:"type,omitempty"`
	Format           []Descriptor   `json:"format,omitempty"            yaml:"format,omitempty"`
	TrainingLanguage []Language     `json:"training_language,omitempty" yaml:"training_language,omitempty"`
	URL              *string        `json:"url,omitempty"               yaml:"url,omitempty"`
	URLAlias         *string        `json:"url_alias,omitempty"         yaml:"url_alias,omitempty"`
	BodyHTML         *string        `json:"body-html,omitempty"         yaml:"body_html,omitempty"`
	Date             *DocumentDates `json:"date,omitempty"              yaml:"date,omitempty"`
}

// SourceFields is the field schema of the "sources" resource.
type SourceFields struct {
	ID          *int64         `json:"id,omitempty"           yaml:"id,omitempty"`
	Name        *string        `json:"name,omitempty"         yaml:"name,omitempty"`
	Status      *string        `json:"status,omitempty"       yaml:"status,omitempty"`
	Shortname   *string        `json:"shortname,omitempty"    yaml:"shortname,omitempty"`
	ContentType []string       `json:"content_type,omitempty" yaml:"content_type,omitempty"`
	Type        *Descriptor    `json:"type,omitempty"         yaml:"type,omitempty"`
	Country     []Country      `json:"country,omitempty"      yaml:"country,omitempty"`
	URL         *string        `json:"url,omitempty"          yaml:"url,omitempty"`
	URLAlias    *string        `json:"url_alias,omitempty"    yaml:"url_alias,omitempty"`
	Date        *DocumentDates `json:"date,omitempty"         yaml:"date,omitempty"`
}

// BlogFields is the field schema of the "blog" resource.
type BlogFields struct {
	ID       *int64         `json:"id,omitempty"        yaml:"id,omitempty"`
	Title    *string        `json:"title,omitempty"     yaml:"title,omitempty"`
	Status   *string        `json:"status,omitempty"    yaml:"status,omitempty"`
	Body     *string        `json:"body,omitempty"      yaml:"body,omitempty"`
	Author   *string        `json:"author,omitempty"    yaml:"author,omitempty"`
	URL      *string        `json:"url,omitempty"       yaml:"url,omitempty"`
	URLAlias *string        `json:"url_alias,omitempty" yaml:"url_alias,omitempty"`
	BodyHTML *string        `json:"body-html,omitempty" yaml:"body_html,omitempty"`
	Date     *DocumentDates `json:"date,omitempty"      yaml:"date,omitempty"`
}

// BookFields is the field schema of the "book" resource.
type BookFields struct {
	ID       *int64         `json:"id,omitempty"        yaml:"id,omitempty"`
	Title    *string        `json:"title,omitempty"     yaml:"title,omitempty"`
	Status   *string        `json:"status,omitempty"    yaml:"status,omitempty"`
	Body     *string        `json:"body,omitempty"      yaml:"body,omitempty"`
	URL      *string        `json:"url,omitempty"       yaml:"url,omitempty"`
	URLAlias *string        `json:"url_alias,omitempty" yaml:"url_alias,omitempty"`
	BodyHTML *string        `json:"body-html,omitempty" yaml:"body_html,omitempty"`
	Date     *DocumentDates `json:"date,omitempty"      yaml:"date,omitempty"`
}
