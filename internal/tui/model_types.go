package tui

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/scottbass3/flareimg/internal/config"
	"github.com/scottbass3/flareimg/internal/images"
)

type Focus int

const (
	FocusImages Focus = iota
	FocusImageVariants
	FocusVariants
)

const (
	defaultTableHeight      = 10
	minTableHeight          = 4
	maxLogLines             = 25
	maxVisibleLogs          = 5
	maxFilterWidth          = 40
	defaultRenderWidth      = 100
	defaultPageSize         = 100
	mainSectionTitleLines   = 1
	mainSectionBorderLines  = 2
	mainSectionHChromeChars = 4
	tableChromeLines        = 2
	requestTimeout          = 10 * time.Second
)

// Client is the part of the images client the browser needs.
type Client interface {
	ListImages(ctx context.Context, req images.ListImagesRequest) (*images.Response[images.ImageList], error)
	GetImage(ctx context.Context, id string) (*images.Response[images.Image], error)
	DeleteImage(ctx context.Context, id string) (*images.Response[json.RawMessage], error)
	ListVariants(ctx context.Context) (*images.Response[images.VariantList], error)
	DeleteVariant(ctx context.Context, id string) (*images.Response[json.RawMessage], error)
	GetStats(ctx context.Context) (*images.Response[images.Stats], error)
}

// Connector builds a client for the named account.
type Connector func(account string) (Client, error)

type confirmAction int

const (
	confirmActionNone confirmAction = iota
	confirmActionQuit
	confirmActionDeleteImage
	confirmActionDeleteVariant
)

type Model struct {
	width  int
	height int

	status  string
	focus   Focus
	account string

	accounts []config.Account
	connect  Connector
	client   Client

	images      []images.Image
	page        int
	pageSize    int
	hasNextPage bool

	variants []images.Variant
	stats    images.Stats
	hasStats bool

	selectedImage    images.Image
	hasSelectedImage bool

	filterActive bool
	filterInput  textinput.Model

	table        table.Model
	tableColumns []table.Column

	commandActive           bool
	commandInput            textinput.Model
	commandMatches          []string
	commandIndex            int
	commandPrevFilterActive bool

	helpActive bool

	confirmAction  confirmAction
	confirmTitle   string
	confirmMessage string
	confirmTarget  string
	confirmFocus   int

	loadingCount int

	debug  bool
	logCh  <-chan string
	logs   []string
	logMax int
}

type imagesMsg struct {
	page   int
	images []images.Image
	err    error
}

type imageMsg struct {
	image images.Image
	err   error
}

type overviewMsg struct {
	variants []images.Variant
	stats    images.Stats
	err      error
}

type deletedMsg struct {
	action confirmAction
	id     string
	err    error
}

type clientMsg struct {
	account string
	client  Client
	err     error
}

type logMsg string

type listView struct {
	headers []string
	rows    [][]string
	indices []int
}

type helpEntry struct {
	Keys   string
	Action string
}

type commandHelp struct {
	Command string
	Usage   string
}
