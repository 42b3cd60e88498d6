package splunkbase

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/splunkbase-bot/splunkbase-urls/log"
	"github.com/splunkbase-bot/splunkbase-urls/models"
)

const (
	DefaultBaseURL = "https://splunkbase.splunk.com"

	requestTimeout = 10 * time.Second
)

// ErrUnexpectedResponse is the cause of every error raised for a response
// body that does not have the expected JSON shape.
var ErrUnexpectedResponse = errors.New("unexpected response structure")

// errNoReleases marks a release list that is empty or not a list at all.
var errNoReleases = errors.New("no releases in response")

// Client looks up apps in the Splunkbase catalog. It holds no state between
// calls.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a Client for baseURL, or for the public catalog when
// baseURL is empty.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: requestTimeout},
	}
}

// FetchAppInfo returns the name, latest version and download URL of an app.
// Failures are logged and never returned: a failed app lookup yields an
// AppInfo with every field absent, a failed or empty release lookup keeps the
// name and leaves version and URL absent.
func (c *Client) FetchAppInfo(ctx context.Context, appID string) models.AppInfo {
	ctx = log.WithApp(ctx, appID)
	info := models.AppInfo{AppID: appID}

	name, err := c.getAppName(ctx, appID)
	if err != nil {
		logFailure(ctx, appID, err)
		return info
	}
	info.Name = models.String(name)

	version, err := c.getLatestVersion(ctx, appID)
	if err != nil {
		logFailure(ctx, appID, err)
		if errors.Cause(err) == ErrUnexpectedResponse {
			return models.AppInfo{AppID: appID}
		}
		return info
	}

	info.Version = models.String(version)
	info.DownloadURL = models.String(c.DownloadURL(appID, version))
	return info
}

// FetchAll looks up every app in order.
func (c *Client) FetchAll(ctx context.Context, appIDs []string) []models.AppInfo {
	infos := make([]models.AppInfo, 0, len(appIDs))
	for _, appID := range appIDs {
		infos = append(infos, c.FetchAppInfo(ctx, appID))
	}
	return infos
}

// FetchMultiple returns the download URLs of appIDs joined by commas, in input
// order. Apps without a URL are left out.
func (c *Client) FetchMultiple(ctx context.Context, appIDs []string) string {
	return JoinURLs(c.FetchAll(ctx, appIDs))
}

// JoinURLs joins the present download URLs of infos with commas.
func JoinURLs(infos []models.AppInfo) string {
	urls := []string{}
	for _, info := range infos {
		if info.HasDownloadURL() {
			urls = append(urls, info.GetDownloadURL())
		}
	}
	return strings.Join(urls, ",")
}

// DownloadURL builds the download link of one release. Nothing is escaped.
func (c *Client) DownloadURL(appID, version string) string {
	return fmt.Sprintf("%s/app/%s/release/%s/download/", c.BaseURL, appID, version)
}

func (c *Client) appURL(appID string) string {
	return fmt.Sprintf("%s/api/v1/app/%s", c.BaseURL, appID)
}

func (c *Client) releaseURL(appID string) string {
	return c.appURL(appID) + "/release"
}

func (c *Client) getAppName(ctx context.Context, appID string) (string, error) {
	body, err := c.getJSON(ctx, c.appURL(appID))
	if err != nil {
		return "", err
	}

	app, ok := body.(map[string]interface{})
	if !ok {
		return "", errors.Wrapf(ErrUnexpectedResponse, "app %s is a %T, not an object", appID, body)
	}

	switch title := app["title"].(type) {
	case nil:
		return "Unknown", nil
	case string:
		return title, nil
	default:
		return "", errors.Wrapf(ErrUnexpectedResponse, "title of app %s is a %T", appID, title)
	}
}

func (c *Client) getLatestVersion(ctx context.Context, appID string) (string, error) {
	body, err := c.getJSON(ctx, c.releaseURL(appID))
	if err != nil {
		return "", err
	}

	releases, ok := body.([]interface{})
	if !ok || len(releases) == 0 {
		return "", errNoReleases
	}

	// Releases are listed newest first.
	latest, ok := releases[0].(map[string]interface{})
	if !ok {
		return "", errors.Wrapf(ErrUnexpectedResponse, "release 0 of app %s is a %T", appID, releases[0])
	}
	name, ok := latest["name"].(string)
	if !ok {
		return "", errors.Wrapf(ErrUnexpectedResponse, "release 0 of app %s has no name", appID)
	}
	return name, nil
}

func (c *Client) getJSON(ctx context.Context, url string) (interface{}, error) {
	log.G(ctx).Debugf("Requesting: %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "building request for %s", url)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("%s returned %s", url, resp.Status)
	}

	raw, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", url)
	}

	var body interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, errors.Wrapf(ErrUnexpectedResponse, "decoding %s: %v", url, err)
	}
	return body, nil
}

func logFailure(ctx context.Context, appID string, err error) {
	switch errors.Cause(err) {
	case errNoReleases:
		log.G(ctx).Warnf("Error: Unexpected response structure for app %s", appID)
	case ErrUnexpectedResponse:
		log.G(ctx).Warnf("Unexpected response structure for app %s: %v", appID, err)
	default:
		log.G(ctx).Warnf("Error fetching details for app %s: %v", appID, err)
	}
}
