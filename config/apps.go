package config

import (
	"io/ioutil"

	"github.com/go-yaml/yaml"
	"github.com/pkg/errors"

	"github.com/splunkbase-bot/splunkbase-urls/log"
	"github.com/splunkbase-bot/splunkbase-urls/models"
)

const DefaultAppsFile = "config/apps.yaml"

// GetApps reads the app list at path. Entries without an id are dropped.
// A non-empty target narrows the list to that id; an unknown target gives
// an empty list.
func GetApps(path, target string) ([]models.DesiredApp, error) {
	yamlFile, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading app list %s", path)
	}

	c := []models.DesiredApp{}
	err = yaml.Unmarshal(yamlFile, &c)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing app list %s", path)
	}

	apps := []models.DesiredApp{}
	for i, app := range c {
		if app.ID == "" {
			log.L.Warnf("Skipping entry %d of %s: no id", i, path)
			continue
		}
		apps = append(apps, app)
	}

	if target == "" {
		return apps, nil
	}

	for _, app := range apps {
		if app.ID == target {
			return []models.DesiredApp{app}, nil
		}
	}

	return []models.DesiredApp{}, nil
}

// IDs returns the ids of apps in order.
func IDs(apps []models.DesiredApp) []string {
	ids := make([]string, 0, len(apps))
	for _, app := range apps {
		ids = append(ids, app.ID)
	}
	return ids
}
