package services

import (
  "context"
  "net/http"
  "net/http/httptest"
  "testing"
)

const zaloraFixture = `<html><body>
<a data-test-id="productLink" href="/p/blue-hoodie-12345">
  <img src="https://static.example.com/hoodie.jpg"/>
  <div data-test-id="productBrandName">Uniqlo</div>
  <div data-test-id="productTitle">Blue Hoodie</div>
  <div data-test-id="originalPrice">P1,299</div>
</a>
<a data-test-id="productLink" href="/p/missing-price">
  <div data-test-id="productTitle">No Price Item</div>
</a>
</body></html>`

const penshoppeFixture = `<html><body>
<div class="grid__item grid-product">
  <a class="grid-product__link" href="/products/white-tee">
    <div class="grid-product__image-wrap">
      <div class="grid-product__image"><img src="//cdn.example.com/tee.jpg"/></div>
    </div>
    <div class="grid-product__title">White Tee</div>
    <div class="grid-product__price"><span>P499</span></div>
  </a>
</div>
</body></html>`

func newSearchFixture(t *testing.T, zaloraHTML, penshoppeHTML string, zaloraStatus, penshoppeStatus int) ProductSearchService {
  t.Helper()
  zalora := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    w.WriteHeader(zaloraStatus)
    _, _ = w.Write([]byte(zaloraHTML))
  }))
  t.Cleanup(zalora.Close)
  penshoppe := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    w.WriteHeader(penshoppeStatus)
    _, _ = w.Write([]byte(penshoppeHTML))
  }))
  t.Cleanup(penshoppe.Close)

  t.Setenv("ZALORA_BASE_URL", zalora.URL)
  t.Setenv("PENSHOPPE_BASE_URL", penshoppe.URL)
  return NewProductSearchService(testLogger(t))
}

func TestSearchParsesBothSites(t *testing.T) {
  svc := newSearchFixture(t, zaloraFixture, penshoppeFixture, http.StatusOK, http.StatusOK)

  products, err := svc.Search(context.Background(), "hoodie")
  if err != nil {
    t.Fatalf("search: %v", err)
  }
  if len(products) != 2 {
    t.Fatalf("expected 2 products (incomplete cards skipped), got %d", len(products))
  }

  zaloraHit := products[0]
  if zaloraHit.Name != "Blue Hoodie" || zaloraHit.Price != "P1,299" || zaloraHit.Brand != "Uniqlo" {
    t.Fatalf("unexpected zalora product: %+v", zaloraHit)
  }
  if zaloraHit.Source != "zalora" {
    t.Fatalf("expected source zalora, got %q", zaloraHit.Source)
  }

  penshoppeHit := products[1]
  if penshoppeHit.Name != "White Tee" || penshoppeHit.Price != "P499" {
    t.Fatalf("unexpected penshoppe product: %+v", penshoppeHit)
  }
  if penshoppeHit.ImageURL != "https://cdn.example.com/tee.jpg" {
    t.Fatalf("expected protocol-relative image resolved, got %q", penshoppeHit.ImageURL)
  }
}

func TestSearchRelativeURLsMadeAbsolute(t *testing.T) {
  svc := newSearchFixture(t, zaloraFixture, "<html></html>", http.StatusOK, http.StatusOK)

  products, err := svc.Search(context.Background(), "hoodie")
  if err != nil {
    t.Fatalf("search: %v", err)
  }
  if len(products) != 1 {
    t.Fatalf("expected 1 product, got %d", len(products))
  }
  url := products[0].ProductURL
  if len(url) < 7 || url[:7] != "http://" {
    t.Fatalf("expected absolute product URL against test server, got %q", url)
  }
}

func TestSearchOneSiteDownStillReturnsResults(t *testing.T) {
  svc := newSearchFixture(t, zaloraFixture, "", http.StatusOK, http.StatusInternalServerError)

  products, err := svc.Search(context.Background(), "hoodie")
  if err != nil {
    t.Fatalf("one failing site must not fail the search: %v", err)
  }
  if len(products) != 1 {
    t.Fatalf("expected the healthy site's product, got %d", len(products))
  }
}

func TestSearchAllSitesDownFails(t *testing.T) {
  svc := newSearchFixture(t, "", "", http.StatusBadGateway, http.StatusBadGateway)

  if _, err := svc.Search(context.Background(), "hoodie"); err == nil {
    t.Fatalf("expected error when every site fails")
  }
}

func TestSearchEmptyQuery(t *testing.T) {
  svc := newSearchFixture(t, zaloraFixture, penshoppeFixture, http.StatusOK, http.StatusOK)

  if _, err := svc.Search(context.Background(), "   "); err == nil {
    t.Fatalf("expected error for blank query")
  }
}

func TestSearchCapsResultsPerQuery(t *testing.T) {
  many := "<html><body>"
  for i := 0; i < 8; i++ {
    many += `<a data-test-id="productLink" href="/p/item">
      <div data-test-id="productTitle">Item</div>
      <div data-test-id="originalPrice">P100</div>
    </a>`
  }
  many += "</body></html>"

  t.Setenv("PRODUCT_SEARCH_RESULTS_PER_QUERY", "3")
  svc := newSearchFixture(t, many, "<html></html>", http.StatusOK, http.StatusOK)

  products, err := svc.Search(context.Background(), "item")
  if err != nil {
    t.Fatalf("search: %v", err)
  }
  if len(products) != 3 {
    t.Fatalf("expected per-query cap of 3, got %d", len(products))
  }
}

func TestAbsoluteURL(t *testing.T) {
  cases := []struct{ base, href, want string }{
    {"https://shop.example.com", "/p/1", "https://shop.example.com/p/1"},
    {"https://shop.example.com", "p/1", "https://shop.example.com/p/1"},
    {"https://shop.example.com", "//cdn.example.com/x.jpg", "https://cdn.example.com/x.jpg"},
    {"https://shop.example.com", "https://other.example.com/y", "https://other.example.com/y"},
    {"https://shop.example.com", "", ""},
  }
  for _, tc := range cases {
    if got := absoluteURL(tc.base, tc.href); got != tc.want {
      t.Fatalf("absoluteURL(%q, %q) = %q, want %q", tc.base, tc.href, got, tc.want)
    }
  }
}
