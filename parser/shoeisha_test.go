package parser

import (
	"testing"
	"time"

	"techbook-scraper/models"
)

const shoeishaListHTML = `
<html><body>
<div id="cx_contents_block"><div><section>
<div class="row list">
  <div class="item">
    <div class="imgWrapper"><a href="/book/detail/9784798180001"><img src="/static/images/9784798180001.jpg"></a></div>
    <div class="textWrapper">
      <h3><a href="/book/detail/9784798180001">独習Go言語</a></h3>
      <p class="author">山田太郎 著</p>
      <dl>
        <dt>発売：</dt><dd>2024年5月15日</dd>
        <dt>定価：</dt><dd>3,278円（本体2,980円＋税10%）</dd>
        <dt>ISBN：</dt><dd class="isbn">9784798180001</dd>
      </dl>
    </div>
  </div>
  <div class="item">
    <div class="textWrapper">
      <h3><a href="https://www.shoeisha.co.jp/book/detail/9784798180002">テスト駆動開発の実践</a></h3>
      <dl>
        <dt>定価：</dt><dd>2,420円（本体2,200円＋税10%）</dd>
        <dt>ISBN：</dt><dd class="isbn">9784798180002</dd>
      </dl>
    </div>
  </div>
</div>
</section></div></div>
</body></html>`

func TestShoeishaParseCatalog(t *testing.T) {
	p := NewShoeishaParser("https://www.shoeisha.co.jp/")

	books, err := p.ParseCatalog(shoeishaListHTML)
	if err != nil {
		t.Fatalf("ParseCatalog() error = %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("ParseCatalog() returned %d books, want 2", len(books))
	}

	first := books[0]
	if first.Title != "独習Go言語" {
		t.Errorf("title = %q", first.Title)
	}
	if first.Author != "山田太郎 著" {
		t.Errorf("author = %q", first.Author)
	}
	if first.ISBN != "9784798180001" {
		t.Errorf("isbn = %q", first.ISBN)
	}
	if first.Price != 3278 {
		t.Errorf("price = %d, want 3278", first.Price)
	}
	if first.URL != "https://www.shoeisha.co.jp/book/detail/9784798180001" {
		t.Errorf("url = %q", first.URL)
	}
	if first.CoverImageURL != "https://www.shoeisha.co.jp/static/images/9784798180001.jpg" {
		t.Errorf("cover_image_url = %q", first.CoverImageURL)
	}
	if first.Publisher != models.Shoeisha {
		t.Errorf("publisher = %q", first.Publisher)
	}
	if first.PublishedAt == nil || !first.PublishedAt.Equal(time.Date(2024, 5, 15, 0, 0, 0, 0, jst)) {
		t.Errorf("published_at = %v", first.PublishedAt)
	}

	// Second entry has no author, date or cover; those stay empty
	second := books[1]
	if second.Author != "" || second.CoverImageURL != "" || second.PublishedAt != nil {
		t.Errorf("optional fields not empty: %+v", second)
	}
	if second.URL != "https://www.shoeisha.co.jp/book/detail/9784798180002" {
		t.Errorf("absolute url was rewritten: %q", second.URL)
	}
}

func TestShoeishaParseCatalogSkipsEntryWithoutTitle(t *testing.T) {
	html := `
<div id="cx_contents_block"><div class="row list">
  <div class="item"><div class="textWrapper">
    <h3><a href="/book/detail/9784798180003"></a></h3>
    <dl><dt>定価：</dt><dd>1,100円</dd></dl>
  </div></div>
  <div class="item"><div class="textWrapper">
    <h3><a href="/book/detail/9784798180004">残る本</a></h3>
  </div></div>
</div></div>`

	p := NewShoeishaParser("https://www.shoeisha.co.jp/")
	books, err := p.ParseCatalog(html)
	if err != nil {
		t.Fatalf("ParseCatalog() error = %v", err)
	}
	if len(books) != 1 {
		t.Fatalf("ParseCatalog() returned %d books, want 1", len(books))
	}
	if books[0].Title != "残る本" {
		t.Errorf("title = %q", books[0].Title)
	}
}

func TestShoeishaNoItemsFound(t *testing.T) {
	p := NewShoeishaParser("https://www.shoeisha.co.jp/")

	empty := `<div id="cx_contents_block"><p>該当の書籍は見つかりませんでした。</p></div>`
	if !p.NoItemsFound(empty) {
		t.Error("NoItemsFound() = false for the end-of-catalog page")
	}
	if p.NoItemsFound(shoeishaListHTML) {
		t.Error("NoItemsFound() = true for a page with entries")
	}
}
