package consts

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Tag category prefixes. A tag without a recognized prefix is "general".
const (
	TagPrefixCopyright = "copyright:"
	TagPrefixCharacter = "character:"
	TagPrefixArtist    = "artist:"
)

const (
	CategoryCopyright = "Copyright"
	CategoryCharacter = "Character"
	CategoryArtist    = "Artist"
	CategoryGeneral   = "General"
)

// MediaFolderPosts destination folder on the media host. Kept flat: public
// id recovery from delivery URLs takes the last two path segments, which
// only works with a single folder level.
const MediaFolderPosts = "posts"

// MinSuggestQueryLen shortest accepted tag autocomplete query
const MinSuggestQueryLen = 2

// MaxSuggestPerCategory autocomplete results returned per category
const MaxSuggestPerCategory = 5
