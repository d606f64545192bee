package mockup

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/youruser/mockupapp/internal/templates"
)

var pathSafe = strings.NewReplacer("/", "-", `\`, "-")

// Filename builds "{site} - {client} - {campaign} - {date} - Mock.jpg".
func Filename(template, client, campaign, liveDate string) string {
	site := templates.DisplayName(template)
	name := fmt.Sprintf("%s - %s - %s - %s - Mock.jpg", site, client, campaign, liveDate)
	return pathSafe.Replace(name)
}

// CampaignFromArtwork takes the campaign out of an artwork file name such
// as "Client - Campaign - 48 Sheet.jpg". Names with fewer than three parts
// use their last part.
func CampaignFromArtwork(filename string) string {
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	parts := strings.Split(stem, " - ")
	if len(parts) >= 3 {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(parts[len(parts)-1])
}
