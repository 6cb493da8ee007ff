package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProjects(t *testing.T) {
	t.Run("title with tech stack and links", func(t *testing.T) {
		section := "Task Tracker (personal)\n" +
			"Tech Stack: React, Node.js, MongoDB\n" +
			"• Kanban board with offline sync\n" +
			"https://github.com/jsmith/task-tracker\n" +
			"Live: https://tracker.example.com"

		projects := parseProjects(section)
		require.Len(t, projects, 1)

		p := projects[0]
		assert.Equal(t, "Task Tracker", p.Name)
		assert.Equal(t, []string{"React", "Node.js", "MongoDB"}, p.Technologies)
		assert.Equal(t, "Kanban board with offline sync", p.Description)
		assert.Equal(t, "https://github.com/jsmith/task-tracker", p.RepoURL)
		assert.Equal(t, "https://tracker.example.com", p.DemoURL)
	})

	t.Run("technologies fall back to vocabulary matching", func(t *testing.T) {
		section := "Log Shipper\n• Streams container logs to Elasticsearch using Kafka"

		projects := parseProjects(section)
		require.Len(t, projects, 1)

		assert.Equal(t, []string{"Elasticsearch", "Kafka"}, projects[0].Technologies)
	})

	t.Run("credential metadata is excluded from descriptions", func(t *testing.T) {
		section := "Demo Shop\n" +
			"• Storefront with cart and checkout\n" +
			"• user: demo@example.com\n" +
			"• password: hunter2"

		projects := parseProjects(section)
		require.Len(t, projects, 1)

		assert.Equal(t, "Storefront with cart and checkout", projects[0].Description)
	})

	t.Run("multiple titles split into separate projects", func(t *testing.T) {
		section := "Weather Bot\n• Telegram alerts\nPortfolio Site\n• Static site on Nginx"

		projects := parseProjects(section)
		require.Len(t, projects, 2)

		assert.Equal(t, "Weather Bot", projects[0].Name)
		assert.Equal(t, "Portfolio Site", projects[1].Name)
	})

	t.Run("schemeless repo host counts as repo link", func(t *testing.T) {
		section := "CLI Tool\ngithub.com/jsmith/cli-tool"

		projects := parseProjects(section)
		require.Len(t, projects, 1)

		assert.Equal(t, "github.com/jsmith/cli-tool", projects[0].RepoURL)
	})

	t.Run("empty section", func(t *testing.T) {
		assert.Nil(t, parseProjects(""))
	})
}
