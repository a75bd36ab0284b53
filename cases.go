package main

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/sync/errgroup"

	"github.com/netra-cyber/netra-portal/aggregate"
	"github.com/netra-cyber/netra-portal/identity"
	"github.com/netra-cyber/netra-portal/listing"
	"github.com/netra-cyber/netra-portal/models"
	"github.com/netra-cyber/netra-portal/render"
	"github.com/netra-cyber/netra-portal/sanitize"
)

var requestTypes = []string{"CDR", "IPDR", "CAF", "SDR", "TOWER_DUMP", "IMEI"}

func caseStatusOptions(selected string, withAll bool) []render.Option {
	pairs := []string{models.CaseActive, "Active", models.CasePending, "Pending", models.CaseClosed, "Closed"}
	if withAll {
		pairs = append([]string{listing.AllStatuses, "All Statuses"}, pairs...)
	}
	return render.Options(selected, pairs...)
}

func getDashboard(w http.ResponseWriter, r *http.Request, _ httprouter.Params, s session) {
	q := r.URL.Query()
	criteria := listing.CaseCriteria{
		Search: q.Get("q"),
		Status: q.Get("status"),
		Sort:   q.Get("sort"),
	}
	if criteria.Sort == "" {
		criteria.Sort = listing.DefaultSort
	}

	page := render.DashboardPage{
		Chrome:    chrome(w, r, s, "Cases", "cases"),
		Criteria:  criteria,
		Statuses:  caseStatusOptions(criteria.Status, true),
		Sorts:     render.Options(criteria.Sort, listing.DateDesc, "Newest First", listing.DateAsc, "Oldest First", listing.FIRAsc, "FIR (A-Z)", listing.FIRDesc, "FIR (Z-A)"),
		CanCreate: s.id.Can(identity.CreateCase),
	}

	cases, err := api.Cases(r.Context(), s.token)
	if err != nil {
		if expired(w, r, err) {
			return
		}
		page.Alert(render.AlertDanger, err.Error())
	}
	page.Counts = aggregate.CountCases(cases)
	page.Cases = aggregate.BuildCaseRows(listing.Cases(cases, criteria))

	renderPage(w, http.StatusOK, render.PageDashboard, page)
}

func postCase(w http.ResponseWriter, r *http.Request, _ httprouter.Params, s session) {
	in := models.CaseCreate{
		FIRNumber:      strings.TrimSpace(r.PostFormValue("fir_number")),
		PoliceStation:  strings.TrimSpace(r.PostFormValue("police_station")),
		CaseCategory:   r.PostFormValue("case_category"),
		CaseType:       r.PostFormValue("case_type"),
		Description:    r.PostFormValue("description"),
		AmountInvolved: strings.TrimSpace(r.PostFormValue("amount_involved")),
	}

	created, err := api.CreateCase(r.Context(), s.token, in)
	if err != nil {
		if expired(w, r, err) {
			return
		}
		redirectWith(w, r, "/", render.AlertDanger, err.Error())
		return
	}
	redirectWith(w, r, aggregate.CasePath(created.ID), render.AlertSuccess, "Case "+created.FIRNumber+" registered successfully.")
}

func getCase(w http.ResponseWriter, r *http.Request, ps httprouter.Params, s session) {
	id, ok := idParam(ps, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	c, err := api.Case(r.Context(), s.token, id)
	if err != nil {
		renderError(w, r, s, err)
		return
	}

	var (
		evidence  []models.EvidenceFile
		requests  []models.Request
		financial []models.FinancialEntity
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		evidence, err = api.Evidence(ctx, s.token, id)
		return err
	})
	g.Go(func() (err error) {
		requests, err = api.Requests(ctx, s.token)
		return err
	})
	g.Go(func() (err error) {
		financial, err = api.FinancialEntities(ctx, s.token, id)
		return err
	})

	page := render.CasePage{
		Chrome:       chrome(w, r, s, c.FIRNumber, "cases"),
		Description:  sanitize.RichText(c.Description),
		Statuses:     caseStatusOptions(c.Status, false),
		CanUpload:    s.id.Can(identity.UploadEvidence),
		CanReview:    s.id.Can(identity.ReviewRequest),
		RequestTypes: requestTypes,
		EntityTypes:  render.Options("", models.EntityBankAccount, "Bank Account", models.EntityUPI, "UPI ID", models.EntityWallet, "Wallet"),
	}
	if err := g.Wait(); err != nil {
		if expired(w, r, err) {
			return
		}
		page.Alert(render.AlertWarning, err.Error())
	}

	rows := aggregate.BuildCaseRows([]models.Case{c})
	page.Case = rows[0]
	page.Evidence = evidenceRows(evidence)
	page.Financial = financialRows(financial)

	var linked []models.Request
	for _, req := range requests {
		if req.CaseID == id {
			linked = append(linked, req)
		}
	}
	page.Requests = aggregate.BuildRequestRows(linked, map[int]string{id: c.FIRNumber}, now(), page.CanReview)

	if pid, err := strconv.Atoi(r.URL.Query().Get("preview")); err == nil {
		page.Preview = previewFor(pid, evidence)
	}

	renderPage(w, http.StatusOK, render.PageCase, page)
}

func evidenceRows(files []models.EvidenceFile) []render.EvidenceRow {
	rows := make([]render.EvidenceRow, 0, len(files))
	for _, f := range files {
		row := render.EvidenceRow{
			EvidenceFile: f,
			Uploaded:     aggregate.DateTime(f.UploadedAt.Time),
			Kind:         aggregate.Preview(f.OriginalFilename),
			PreviewPath:  aggregate.CasePath(f.CaseID) + "?preview=" + strconv.Itoa(f.ID),
			DownloadPath: aggregate.EvidenceDownloadPath(f.ID),
		}
		if f.CaseID == 0 {
			row.PreviewPath = aggregate.EvidenceViewPath(f.ID)
		}
		if f.FileType == models.CDRFileType {
			row.CDRPath = "/analytics/cdr?evidence_id=" + strconv.Itoa(f.ID)
		}
		rows = append(rows, row)
	}
	return rows
}

// previewFor builds the inline preview of one evidence file, or the fallback panel when
// the browser cannot show it.
func previewFor(id int, files []models.EvidenceFile) *render.Preview {
	for _, f := range files {
		if f.ID != id {
			continue
		}
		p := &render.Preview{
			Name:         f.OriginalFilename,
			Kind:         aggregate.Preview(f.OriginalFilename),
			Src:          aggregate.EvidenceViewPath(f.ID),
			DownloadPath: aggregate.EvidenceDownloadPath(f.ID),
		}
		if !p.Kind.Embeddable() {
			p.Error = "Preview not available for this file type."
		}
		return p
	}
	return nil
}

func financialRows(entities []models.FinancialEntity) []render.FinancialRow {
	rows := make([]render.FinancialRow, 0, len(entities))
	for _, e := range entities {
		rows = append(rows, render.FinancialRow{
			FinancialEntity: e,
			Kind:            aggregate.Upper(e.EntityType),
			Identifier:      aggregate.OrNA(e.UPIID, e.AccountNumber, e.WalletProvider),
			Amount:          aggregate.Rupees(e.TransactionAmount.Float()),
		})
	}
	return rows
}

func postCaseStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params, s session) {
	id, ok := idParam(ps, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	back := aggregate.CasePath(id)

	if _, err := api.UpdateCaseStatus(r.Context(), s.token, id, r.PostFormValue("status")); err != nil {
		if expired(w, r, err) {
			return
		}
		redirectWith(w, r, back, render.AlertDanger, err.Error())
		return
	}
	redirectWith(w, r, back, render.AlertSuccess, "Case status updated.")
}

func postEvidence(w http.ResponseWriter, r *http.Request, ps httprouter.Params, s session) {
	id, ok := idParam(ps, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	back := aggregate.CasePath(id)

	file, header, err := r.FormFile("file")
	if err != nil {
		redirectWith(w, r, back, render.AlertDanger, "Please choose a file to upload.")
		return
	}
	defer file.Close()

	_, err = api.UploadEvidence(r.Context(), s.token, id, r.FormValue("file_type"), header.Filename, file)
	if err != nil {
		if expired(w, r, err) {
			return
		}
		redirectWith(w, r, back, render.AlertDanger, err.Error())
		return
	}
	redirectWith(w, r, back, render.AlertSuccess, "Evidence uploaded successfully.")
}

// splitNumbers accepts numbers separated by commas, spaces or new lines.
func splitNumbers(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\n' || r == '\r' || r == '\t'
	})
}

func postCaseRequests(w http.ResponseWriter, r *http.Request, ps httprouter.Params, s session) {
	id, ok := idParam(ps, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	back := aggregate.CasePath(id)

	numbers := splitNumbers(r.PostFormValue("mobile_numbers"))
	requestType := r.PostFormValue("request_type")
	reason := r.PostFormValue("reason")

	var err error
	switch len(numbers) {
	case 0:
		redirectWith(w, r, back, render.AlertDanger, "Enter at least one mobile number.")
		return
	case 1:
		_, err = api.CreateRequest(r.Context(), s.token, id, models.RequestCreate{
			MobileNumber: numbers[0],
			RequestType:  requestType,
			Reason:       reason,
		})
	default:
		_, err = api.CreateBatchRequests(r.Context(), s.token, id, models.BatchRequest{
			MobileNumbers: numbers,
			RequestType:   requestType,
			Reason:        reason,
		})
	}
	if err != nil {
		if expired(w, r, err) {
			return
		}
		redirectWith(w, r, back, render.AlertDanger, err.Error())
		return
	}
	redirectWith(w, r, back, render.AlertSuccess, strconv.Itoa(len(numbers))+" request(s) submitted for approval.")
}

func postFinancialEntity(w http.ResponseWriter, r *http.Request, ps httprouter.Params, s session) {
	id, ok := idParam(ps, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	back := aggregate.CasePath(id)

	in := models.FinancialEntity{
		EntityType:        r.PostFormValue("entity_type"),
		BankName:          r.PostFormValue("bank_name"),
		AccountNumber:     r.PostFormValue("account_number"),
		IFSCCode:          r.PostFormValue("ifsc_code"),
		AccountHolderName: r.PostFormValue("account_holder_name"),
		UPIID:             r.PostFormValue("upi_id"),
		WalletProvider:    r.PostFormValue("wallet_provider"),
		TransactionID:     r.PostFormValue("transaction_id"),
		TransactionAmount: models.ParseAmount(r.PostFormValue("transaction_amount")),
	}

	if _, err := api.CreateFinancialEntity(r.Context(), s.token, id, in); err != nil {
		if expired(w, r, err) {
			return
		}
		redirectWith(w, r, back, render.AlertDanger, err.Error())
		return
	}
	redirectWith(w, r, back, render.AlertSuccess, "Financial entity linked to case.")
}

func postNPCIRequest(w http.ResponseWriter, r *http.Request, ps httprouter.Params, s session) {
	id, ok := idParam(ps, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	back := aggregate.CasePath(id)

	entityID, err := strconv.Atoi(r.PostFormValue("financial_entity_id"))
	if err != nil {
		redirectWith(w, r, back, render.AlertDanger, "Invalid Entity Selected")
		return
	}

	entities, err := api.FinancialEntities(r.Context(), s.token, id)
	if err != nil {
		if expired(w, r, err) {
			return
		}
		redirectWith(w, r, back, render.AlertDanger, err.Error())
		return
	}
	var entity *models.FinancialEntity
	for i := range entities {
		if entities[i].ID == entityID {
			entity = &entities[i]
		}
	}
	if entity == nil {
		redirectWith(w, r, back, render.AlertDanger, "Invalid Entity Selected")
		return
	}

	_, err = api.CreateNPCIRequest(r.Context(), s.token, id, models.NPCIRequest{
		FinancialEntityID: entityID,
		UPIID:             aggregate.OrNA(entity.UPIID, entity.AccountNumber),
		RequestType:       r.PostFormValue("request_type"),
		Reason:            r.PostFormValue("reason"),
	})
	if err != nil {
		if expired(w, r, err) {
			return
		}
		redirectWith(w, r, back, render.AlertDanger, err.Error())
		return
	}
	redirectWith(w, r, back, render.AlertSuccess, "NPCI/Bank Request Initiated Successfully")
}
