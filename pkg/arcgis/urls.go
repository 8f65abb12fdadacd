package arcgis

import (
	"net/url"
	"strings"
)

// NormalizeGPServiceURL normalizes a geoprocessing service URL: ensures a
// scheme, fixes the casing of the well-known path segments, and strips
// the f= query parameter. Non-service URLs are returned unchanged apart
// from scheme defaulting.
func NormalizeGPServiceURL(rawURL string) string {
	lowerURL := strings.ToLower(rawURL)
	isArcGISService := strings.Contains(lowerURL, "/rest/services") || strings.Contains(lowerURL, "/arcgis/rest")

	if !isArcGISService {
		u, err := url.Parse(rawURL)
		if err == nil && u.Scheme == "" {
			if strings.Contains(rawURL, ".") && !strings.Contains(rawURL, " ") && !strings.HasPrefix(rawURL, "/") {
				return "https://" + rawURL
			}
		}
		return rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL // Return original on parse error
	}

	if u.Scheme == "" {
		u.Scheme = "https"
	}

	pathParts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, part := range pathParts {
		switch strings.ToLower(part) {
		case "arcgis":
			pathParts[i] = "ArcGIS"
		case "rest":
			pathParts[i] = "rest"
		case "services":
			pathParts[i] = "services"
		case "gpserver":
			pathParts[i] = "GPServer"
		}
	}
	if strings.HasPrefix(u.Path, "/") {
		u.Path = "/" + strings.Join(pathParts, "/")
	} else {
		u.Path = strings.Join(pathParts, "/")
	}

	lowerPathEnd := ""
	if len(pathParts) > 0 {
		lowerPathEnd = strings.ToLower(pathParts[len(pathParts)-1])
	}

	// Base service URLs end with a slash; task URLs do not.
	if lowerPathEnd == "gpserver" {
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
	} else if len(u.Path) > 1 && strings.HasSuffix(u.Path, "/") {
		u.Path = u.Path[:len(u.Path)-1]
	}

	q := u.Query()
	q.Del("f")
	u.RawQuery = q.Encode()

	return u.String()
}

// IsValidHTTPURL checks if a URL is a valid HTTP or HTTPS URL.
func IsValidHTTPURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
