// Package account covers the person-and-partner records around the loan book:
// customers, guarantors, partners and their photos.
package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"finbook-backend/internal/domain/customer"
	loandom "finbook-backend/internal/domain/loan"
	"finbook-backend/internal/domain/partner"
	"finbook-backend/internal/domain/storage"
	"finbook-backend/pkg/apperr"
	"finbook-backend/pkg/id"
)

const maxImageBytes = 5 << 20

type Usecase struct {
	customers  customer.CustomerRepository
	guarantors customer.GuarantorRepository
	partners   partner.Repository
	loans      loandom.Repository
	store      storage.ObjectStore
}

func NewUsecase(c customer.CustomerRepository, g customer.GuarantorRepository, p partner.Repository, l loandom.Repository, s storage.ObjectStore) *Usecase {
	return &Usecase{customers: c, guarantors: g, partners: p, loans: l, store: s}
}

func (u *Usecase) ListCustomers(ctx context.Context) ([]customer.Customer, error) {
	out, err := u.customers.List(ctx)
	if err != nil {
		return nil, apperr.Upstream("fetch customers", err)
	}
	return out, nil
}

func (u *Usecase) GetCustomer(ctx context.Context, customerID string) (*customer.Customer, error) {
	c, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("customer not found")
		}
		return nil, apperr.Upstream("fetch customer", err)
	}
	return c, nil
}

// SaveCustomer inserts or overwrites. New records get an id and the next
// sequential customer number.
func (u *Usecase) SaveCustomer(ctx context.Context, c *customer.Customer) (*customer.Customer, error) {
	if c.Name == "" {
		return nil, apperr.BadRequest("name is required")
	}
	if c.ID == "" {
		c.ID = id.New()
		if c.CustomerID == 0 {
			max, err := u.customers.MaxCustomerID(ctx)
			if err != nil {
				return nil, apperr.Upstream("allocate customer number", err)
			}
			c.CustomerID = max + 1
		}
	}
	if err := u.customers.Save(ctx, c); err != nil {
		return nil, apperr.Upstream("save customer", err)
	}
	return c, nil
}

func (u *Usecase) DeleteCustomer(ctx context.Context, customerID string) error {
	if _, err := u.GetCustomer(ctx, customerID); err != nil {
		return err
	}
	if err := u.customers.Delete(ctx, customerID); err != nil {
		return apperr.Upstream("delete customer", err)
	}
	return nil
}

func (u *Usecase) NextCustomerID(ctx context.Context) (int, error) {
	max, err := u.customers.MaxCustomerID(ctx)
	if err != nil {
		return 0, apperr.Upstream("fetch max customer number", err)
	}
	return max + 1, nil
}

func (u *Usecase) ListGuarantors(ctx context.Context) ([]customer.Guarantor, error) {
	out, err := u.guarantors.List(ctx)
	if err != nil {
		return nil, apperr.Upstream("fetch guarantors", err)
	}
	return out, nil
}

func (u *Usecase) GetGuarantor(ctx context.Context, guarantorID string) (*customer.Guarantor, error) {
	g, err := u.guarantors.GetByID(ctx, guarantorID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("guarantor not found")
		}
		return nil, apperr.Upstream("fetch guarantor", err)
	}
	return g, nil
}

func (u *Usecase) SaveGuarantor(ctx context.Context, g *customer.Guarantor) (*customer.Guarantor, error) {
	if g.Name == "" {
		return nil, apperr.BadRequest("name is required")
	}
	if g.ID == "" {
		g.ID = id.New()
		if g.GuarantorID == 0 {
			max, err := u.guarantors.MaxGuarantorID(ctx)
			if err != nil {
				return nil, apperr.Upstream("allocate guarantor number", err)
			}
			g.GuarantorID = max + 1
		}
	}
	if err := u.guarantors.Save(ctx, g); err != nil {
		return nil, apperr.Upstream("save guarantor", err)
	}
	return g, nil
}

func (u *Usecase) DeleteGuarantor(ctx context.Context, guarantorID string) error {
	if _, err := u.GetGuarantor(ctx, guarantorID); err != nil {
		return err
	}
	if err := u.guarantors.Delete(ctx, guarantorID); err != nil {
		return apperr.Upstream("delete guarantor", err)
	}
	return nil
}

func (u *Usecase) NextGuarantorID(ctx context.Context) (int, error) {
	max, err := u.guarantors.MaxGuarantorID(ctx)
	if err != nil {
		return 0, apperr.Upstream("fetch max guarantor number", err)
	}
	return max + 1, nil
}

func (u *Usecase) ListPartners(ctx context.Context) ([]partner.Partner, error) {
	out, err := u.partners.List(ctx)
	if err != nil {
		return nil, apperr.Upstream("fetch partners", err)
	}
	return out, nil
}

func (u *Usecase) SavePartner(ctx context.Context, p *partner.Partner) (*partner.Partner, error) {
	if p.Name == "" {
		return nil, apperr.BadRequest("name is required")
	}
	if p.ID == "" {
		p.ID = id.New()
	}
	if err := u.partners.Save(ctx, p); err != nil {
		return nil, apperr.Upstream("save partner", err)
	}
	return p, nil
}

func (u *Usecase) DeletePartner(ctx context.Context, partnerID string) error {
	if err := u.partners.Delete(ctx, partnerID); err != nil {
		if isNotFound(err) {
			return apperr.NotFound("partner not found")
		}
		return apperr.Upstream("delete partner", err)
	}
	return nil
}

// PartnerLoans returns every loan booked under the partner.
func (u *Usecase) PartnerLoans(ctx context.Context, partnerID string) ([]loandom.Loan, error) {
	all, err := u.loans.List(ctx)
	if err != nil {
		return nil, apperr.Upstream("fetch loans", err)
	}
	out := []loandom.Loan{}
	for _, l := range all {
		if l.PartnerID == partnerID {
			out = append(out, l)
		}
	}
	return out, nil
}

// ImageUpload is one decoded multipart file.
type ImageUpload struct {
	Data        []byte
	ContentType string
	Filename    string
}

func (in *ImageUpload) validate() error {
	if len(in.Data) == 0 {
		return apperr.BadRequest("image file is required")
	}
	if !strings.HasPrefix(in.ContentType, "image/") {
		return apperr.BadRequest("file must be an image")
	}
	if len(in.Data) > maxImageBytes {
		return apperr.BadRequest("image exceeds the 5MiB limit")
	}
	return nil
}

func (in *ImageUpload) ext() string {
	if i := strings.LastIndexByte(in.Filename, '.'); i >= 0 && i < len(in.Filename)-1 {
		return in.Filename[i+1:]
	}
	return "jpg"
}

func objectPath(kind, ownerID, ext string) string {
	return fmt.Sprintf("%s/%s/photo-%d.%s", kind, ownerID, time.Now().Unix(), ext)
}

// AttachCustomerImage uploads first, then links the URL to the record. If the
// record turns out to be missing or the link fails, the uploaded object is
// removed again so the store holds no orphans.
func (u *Usecase) AttachCustomerImage(ctx context.Context, customerID string, in ImageUpload) (*customer.Customer, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	path := objectPath("customers", customerID, in.ext())
	url, err := u.store.Put(ctx, path, in.Data, in.ContentType)
	if err != nil {
		return nil, apperr.Upstream("upload image", err)
	}
	c, err := u.GetCustomer(ctx, customerID)
	if err != nil {
		u.store.Remove(ctx, path)
		return nil, err
	}
	if err := u.customers.SetImageURL(ctx, customerID, url); err != nil {
		u.store.Remove(ctx, path)
		if isNotFound(err) {
			return nil, apperr.NotFound("customer not found")
		}
		return nil, apperr.Upstream("link image", err)
	}
	c.ImageURL = url
	return c, nil
}

func (u *Usecase) DetachCustomerImage(ctx context.Context, customerID string) error {
	c, err := u.GetCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	if c.ImageURL == "" {
		return apperr.NotFound("customer has no image")
	}
	if path := objectPathFromURL(c.ImageURL); path != "" {
		if err := u.store.Remove(ctx, path); err != nil {
			return apperr.Upstream("remove image", err)
		}
	}
	if err := u.customers.SetImageURL(ctx, customerID, ""); err != nil {
		return apperr.Upstream("unlink image", err)
	}
	return nil
}

func (u *Usecase) AttachGuarantorImage(ctx context.Context, guarantorID string, in ImageUpload) (*customer.Guarantor, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	path := objectPath("guarantors", guarantorID, in.ext())
	url, err := u.store.Put(ctx, path, in.Data, in.ContentType)
	if err != nil {
		return nil, apperr.Upstream("upload image", err)
	}
	g, err := u.GetGuarantor(ctx, guarantorID)
	if err != nil {
		u.store.Remove(ctx, path)
		return nil, err
	}
	if err := u.guarantors.SetImageURL(ctx, guarantorID, url); err != nil {
		u.store.Remove(ctx, path)
		if isNotFound(err) {
			return nil, apperr.NotFound("guarantor not found")
		}
		return nil, apperr.Upstream("link image", err)
	}
	g.ImageURL = url
	return g, nil
}

func (u *Usecase) DetachGuarantorImage(ctx context.Context, guarantorID string) error {
	g, err := u.GetGuarantor(ctx, guarantorID)
	if err != nil {
		return err
	}
	if g.ImageURL == "" {
		return apperr.NotFound("guarantor has no image")
	}
	if path := objectPathFromURL(g.ImageURL); path != "" {
		if err := u.store.Remove(ctx, path); err != nil {
			return apperr.Upstream("remove image", err)
		}
	}
	if err := u.guarantors.SetImageURL(ctx, guarantorID, ""); err != nil {
		return apperr.Upstream("unlink image", err)
	}
	return nil
}

// LoanImageFields maps a multipart field name to the loan column it fills.
var LoanImageFields = []string{"customer", "guarantor1", "guarantor2", "partner"}

// AttachLoanImages uploads one photo per provided field onto the loan record.
// Uploads that succeed before a later failure are removed again.
func (u *Usecase) AttachLoanImages(ctx context.Context, loanID string, uploads map[string]ImageUpload) (*loandom.Loan, error) {
	if len(uploads) == 0 {
		return nil, apperr.BadRequest("at least one image field is required")
	}
	for field := range uploads {
		if !validLoanImageField(field) {
			return nil, apperr.BadRequest("unknown image field: " + field)
		}
	}
	for _, in := range uploads {
		if err := in.validate(); err != nil {
			return nil, err
		}
	}

	l, err := u.loans.GetByID(ctx, loanID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("loan not found")
		}
		return nil, apperr.Upstream("fetch loan", err)
	}

	var stored []string
	rollback := func() {
		for _, p := range stored {
			u.store.Remove(ctx, p)
		}
	}
	for _, field := range LoanImageFields {
		in, ok := uploads[field]
		if !ok {
			continue
		}
		path := fmt.Sprintf("loans/%s/%s-%d.%s", loanID, field, time.Now().Unix(), in.ext())
		url, err := u.store.Put(ctx, path, in.Data, in.ContentType)
		if err != nil {
			rollback()
			return nil, apperr.Upstream("upload image", err)
		}
		stored = append(stored, path)
		switch field {
		case "customer":
			l.CustomerImageURL = url
		case "guarantor1":
			l.Guarantor1ImageURL = url
		case "guarantor2":
			l.Guarantor2ImageURL = url
		case "partner":
			l.PartnerImageURL = url
		}
	}

	if err := u.loans.Save(ctx, l); err != nil {
		rollback()
		return nil, apperr.Upstream("save loan", err)
	}
	return l, nil
}

// DetachLoanImage removes one of the loan's photos. The object removal is
// best-effort; clearing the column is what must succeed.
func (u *Usecase) DetachLoanImage(ctx context.Context, loanID, field string) (*loandom.Loan, error) {
	if !validLoanImageField(field) {
		return nil, apperr.BadRequest("unknown image field: " + field)
	}
	l, err := u.loans.GetByID(ctx, loanID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("loan not found")
		}
		return nil, apperr.Upstream("fetch loan", err)
	}

	var url *string
	switch field {
	case "customer":
		url = &l.CustomerImageURL
	case "guarantor1":
		url = &l.Guarantor1ImageURL
	case "guarantor2":
		url = &l.Guarantor2ImageURL
	case "partner":
		url = &l.PartnerImageURL
	}
	if *url == "" {
		return nil, apperr.NotFound("no image to remove")
	}

	u.store.Remove(ctx, objectPathFromURL(*url))
	*url = ""
	if err := u.loans.Save(ctx, l); err != nil {
		return nil, apperr.Upstream("save loan", err)
	}
	return l, nil
}

func validLoanImageField(field string) bool {
	for _, f := range LoanImageFields {
		if f == field {
			return true
		}
	}
	return false
}

// objectPathFromURL recovers the store path from a public URL, which always
// ends in "{kind}/{id}/{file}".
func objectPathFromURL(url string) string {
	parts := strings.Split(url, "/")
	if len(parts) < 3 {
		return ""
	}
	return strings.Join(parts[len(parts)-3:], "/")
}
