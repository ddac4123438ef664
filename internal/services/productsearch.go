package services

import (
  "context"
  "fmt"
  "net/http"
  "net/url"
  "strings"
  "time"

  "github.com/PuerkitoBio/goquery"

  "github.com/onlyfrogs/stylesync-backend/internal/logger"
  "github.com/onlyfrogs/stylesync-backend/internal/types"
  "github.com/onlyfrogs/stylesync-backend/internal/utils"
)

// ProductSearchService looks up purchasable clothing on the retail sites we
// know how to parse. One query fans out to every configured site; a site that
// errors is skipped, and the call only fails when every site failed.
type ProductSearchService interface {
  Search(ctx context.Context, query string) ([]types.Product, error)
}

type retailSite struct {
  name      string
  searchURL string // fmt pattern with one %s for the escaped query
  parse     func(base string, doc *goquery.Document) []types.Product
}

type productSearchService struct {
  log      *logger.Logger
  client   *http.Client
  sites    []retailSite
  perQuery int
}

func NewProductSearchService(log *logger.Logger) ProductSearchService {
  serviceLog := log.With("service", "ProductSearchService")
  zaloraBase := utils.GetEnv("ZALORA_BASE_URL", "https://www.zalora.com.ph", serviceLog)
  penshoppeBase := utils.GetEnv("PENSHOPPE_BASE_URL", "https://www.penshoppe.com", serviceLog)
  perQuery := utils.GetEnvAsInt("PRODUCT_SEARCH_RESULTS_PER_QUERY", 5, serviceLog)

  sites := []retailSite{
    {
      name:      "zalora",
      searchURL: zaloraBase + "/search?q=%s",
      parse:     parseZalora,
    },
    {
      name:      "penshoppe",
      searchURL: penshoppeBase + "/search?q=%s",
      parse:     parsePenshoppe,
    },
  }
  return &productSearchService{
    log:      serviceLog,
    client:   &http.Client{Timeout: 15 * time.Second},
    sites:    sites,
    perQuery: perQuery,
  }
}

func (ps *productSearchService) Search(ctx context.Context, query string) ([]types.Product, error) {
  if strings.TrimSpace(query) == "" {
    return nil, fmt.Errorf("empty search query")
  }
  var products []types.Product
  var lastErr error
  for _, site := range ps.sites {
    found, err := ps.searchSite(ctx, site, query)
    if err != nil {
      ps.log.Warn("retail site search failed", "site", site.name, "query", query, "error", err)
      lastErr = err
      continue
    }
    if len(found) > ps.perQuery {
      found = found[:ps.perQuery]
    }
    products = append(products, found...)
  }
  if len(products) == 0 && lastErr != nil {
    return nil, lastErr
  }
  return products, nil
}

func (ps *productSearchService) searchSite(ctx context.Context, site retailSite, query string) ([]types.Product, error) {
  reqURL := fmt.Sprintf(site.searchURL, url.QueryEscape(query))
  req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
  if err != nil {
    return nil, err
  }
  req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; StyleSyncBot/1.0)")
  resp, err := ps.client.Do(req)
  if err != nil {
    return nil, err
  }
  defer resp.Body.Close()

  if resp.StatusCode < 200 || resp.StatusCode > 299 {
    return nil, fmt.Errorf("%s responded with HTTP %d", site.name, resp.StatusCode)
  }
  doc, err := goquery.NewDocumentFromReader(resp.Body)
  if err != nil {
    return nil, fmt.Errorf("parse %s response: %w", site.name, err)
  }
  base := baseOf(reqURL)
  return site.parse(base, doc), nil
}

func parseZalora(base string, doc *goquery.Document) []types.Product {
  var products []types.Product
  doc.Find(`[data-test-id="productLink"]`).Each(func(_ int, sel *goquery.Selection) {
    name := strings.TrimSpace(sel.Find(`[data-test-id="productTitle"]`).Text())
    price := strings.TrimSpace(sel.Find(`[data-test-id="originalPrice"]`).Text())
    image, _ := sel.Find("img").Attr("src")
    productURL, _ := sel.Attr("href")
    brand := strings.TrimSpace(sel.Find(`[data-test-id="productBrandName"]`).Text())
    if name == "" || price == "" || productURL == "" {
      return
    }
    products = append(products, types.Product{
      Name:       name,
      Price:      price,
      Brand:      brand,
      ImageURL:   image,
      ProductURL: absoluteURL(base, productURL),
      Source:     "zalora",
    })
  })
  return products
}

func parsePenshoppe(base string, doc *goquery.Document) []types.Product {
  var products []types.Product
  doc.Find(".grid__item.grid-product").Each(func(_ int, sel *goquery.Selection) {
    name := strings.TrimSpace(sel.Find(".grid-product__title").Text())
    price := strings.TrimSpace(sel.Find(".grid-product__price span").First().Text())
    image, _ := sel.Find(".grid-product__image img").Attr("src")
    productURL, _ := sel.Find(".grid-product__link").Attr("href")
    if name == "" || price == "" || productURL == "" {
      return
    }
    products = append(products, types.Product{
      Name:       name,
      Price:      price,
      ImageURL:   absoluteURL(base, image),
      ProductURL: absoluteURL(base, productURL),
      Source:     "penshoppe",
    })
  })
  return products
}

func baseOf(rawURL string) string {
  u, err := url.Parse(rawURL)
  if err != nil {
    return ""
  }
  return u.Scheme + "://" + u.Host
}

func absoluteURL(base, href string) string {
  if href == "" || strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
    return href
  }
  if strings.HasPrefix(href, "//") {
    return "https:" + href
  }
  if !strings.HasPrefix(href, "/") {
    return base + "/" + href
  }
  return base + href
}
