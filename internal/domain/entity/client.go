package entity

import "fmt"

// ClientID is an external window handle. X window ids are 32-bit values;
// embedders on other display servers map their handles into the same space.
type ClientID uint32

// String formats the id the way X tools print window ids.
func (id ClientID) String() string {
	return fmt.Sprintf("0x%x", uint32(id))
}

// BorderKind classifies which border color a client should be drawn with.
type BorderKind int

const (
	// BorderUnfocused is a window without focus.
	BorderUnfocused BorderKind = iota
	// BorderFocused is the window currently holding focus.
	BorderFocused
	// BorderUrgent is a window with the urgency hint set.
	BorderUrgent
)

// Client is a managed window known to the desktop.
type Client struct {
	ID        ClientID
	Class     string
	Title     string
	Workspace int // index of the workspace holding this client
	// Geometry is the window's last reported position. Zero when none
	// was reported; tiled windows get theirs from the layout instead.
	Geometry Region
	Floating bool
	Urgent   bool
	Mapped   bool
}

// NewClient creates a client record for a newly seen window.
func NewClient(id ClientID, class, title string) *Client {
	return &Client{ID: id, Class: class, Title: title}
}

// Border returns the border classification for this client given whether
// it currently holds focus. Urgency wins over focus.
func (c *Client) Border(focused bool) BorderKind {
	switch {
	case c.Urgent:
		return BorderUrgent
	case focused:
		return BorderFocused
	default:
		return BorderUnfocused
	}
}

// Label returns a short human-readable description for logs and lists.
func (c *Client) Label() string {
	if c.Title != "" {
		return c.Title
	}
	if c.Class != "" {
		return c.Class
	}
	return c.ID.String()
}
