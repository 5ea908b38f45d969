package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/nuvance/showcase/portfolio"
)

// Side says where the media pane of a project block sits
type Side string

const (
	MediaLeft  Side = "media-left"
	MediaRight Side = "media-right"
)

// sideFor applies the alternation rule: even positions put the video first
func sideFor(index int) Side {
	if index%2 == 0 {
		return MediaLeft
	}
	return MediaRight
}

// blockLayout is the key and side of one rendered project block
type blockLayout struct {
	Key  int
	Side Side
}

// layoutProjects lays out projects in the order given
func layoutProjects(projects []portfolio.Project) []blockLayout {
	layout := make([]blockLayout, 0, len(projects))
	for i, p := range projects {
		layout = append(layout, blockLayout{Key: p.ID, Side: sideFor(i)})
	}
	return layout
}

// ProjectList renders one block per project
type ProjectList struct {
	app.Compo
	Projects []portfolio.Project
}

// Render renders the project list
func (l *ProjectList) Render() app.UI {
	return app.Div().
		Class("project-list").
		Body(
			app.Range(l.Projects).Slice(func(i int) app.UI {
				return &ProjectBlock{Project: l.Projects[i], Index: i}
			}),
		)
}

// ProjectBlock displays a project as a video pane and a details pane
type ProjectBlock struct {
	app.Compo
	Project portfolio.Project
	Index   int
}

func (b *ProjectBlock) side() Side {
	return sideFor(b.Index)
}

// class returns the block classes; the reversed row is done in CSS so small
// screens keep the video on top
func (b *ProjectBlock) class() string {
	return "project-block " + string(b.side())
}

// Render renders the project block
func (b *ProjectBlock) Render() app.UI {
	return app.Div().
		Class(b.class()).
		DataSet("project-id", b.Project.ID).
		DataSet("side", string(b.side())).
		Body(
			app.Div().Class("project-media").Body(
				app.Video().
					Class("project-video").
					Controls(true).
					Body(
						app.Source().
							Src(b.Project.VideoURL).
							Type("video/mp4"),
						app.Text("Your browser does not support the video tag."),
					),
			),
			app.Div().Class("project-details").Body(
				app.H2().
					Class("project-title").
					Text(b.Project.Title),
				app.P().
					Class("project-description").
					Text(b.Project.Description),
				app.Blockquote().Class("project-testimonial").Body(
					app.P().Text(quote(b.Project.Testimonial)),
				),
				app.Div().Class("project-actions").Body(
					app.A().
						Href(b.Project.WebsiteURL).
						Target("_blank").
						Rel("noopener noreferrer").
						Class("project-link").
						Text("Visit Project"),
				),
			),
		)
}

func quote(s string) string {
	return "\"" + s + "\""
}
