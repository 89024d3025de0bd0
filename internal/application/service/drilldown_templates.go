package service

import "html/template"

var drilldownTemplates = template.Must(template.New("drilldown").Parse(`
{{define "heading"}}<h5>{{.PartyLabel}} Name - {{.PartyCode}}</h5>
<h5>Total {{.CategoryLabel}}: {{.TotalRecords}}</h5>
<br>
<h4>Item Details</h4>
{{end}}

{{define "items"}}{{template "heading" .Heading}}<table class="table table-bordered">
	<thead>
		<tr>
			<th>Item Code</th>
			<th>Item Name</th>
			<th width="10%">Qty</th>
			{{- if .ShowPending}}
			<th width="10%">Pending Qty</th>
			{{- end}}
			<th width="15%">Rate</th>
			<th width="15%">Total Taxable Amount</th>
		</tr>
	</thead>
	<tbody>
		{{- range .Rows}}
		<tr>
			<td>{{.ItemCode}}</td>
			<td>{{.ItemName}}</td>
			<td>{{.Qty}}</td>
			{{- if $.ShowPending}}
			<td>{{.PendingQty}}</td>
			{{- end}}
			<td>{{.Rate}}</td>
			<td>{{.Amount}}</td>
		</tr>
		{{- end}}
		<tr style="font-weight: bold;">
			<td>Total</td>
			<td></td>
			<td>{{.Footer.Qty}}</td>
			{{- if .ShowPending}}
			<td>{{.Footer.PendingQty}}</td>
			{{- end}}
			<td></td>
			<td>{{.Footer.Amount}}</td>
		</tr>
	</tbody>
</table>
{{end}}

{{define "payment_requests"}}{{template "heading" .Heading}}<table class="table table-bordered">
	<thead>
		<tr>
			<th>Payment Request Type</th>
			<th>Transaction Date</th>
			<th width="25%">Reference Doctype</th>
			<th width="25%">Reference Name</th>
			<th width="15%">Total Amount</th>
		</tr>
	</thead>
	<tbody>
		{{- range .Rows}}
		<tr>
			<td>{{.Type}}</td>
			<td>{{.Date}}</td>
			<td>{{.ReferenceDoctype}}</td>
			<td>{{.ReferenceName}}</td>
			<td>{{.Amount}}</td>
		</tr>
		{{- end}}
		<tr style="font-weight: bold;">
			<td>Total</td>
			<td></td>
			<td></td>
			<td></td>
			<td>{{.TotalAmount}}</td>
		</tr>
	</tbody>
</table>
{{end}}

{{define "payment_entries"}}{{template "heading" .Heading}}<table class="table table-bordered">
	<thead>
		<tr>
			<th>Payment Type</th>
			<th>Transaction Date</th>
			<th width="20%">Mode of Payment</th>
			<th width="20%">Unallocated Amount</th>
			<th width="20%">Paid Amount</th>
		</tr>
	</thead>
	<tbody>
		{{- range .Rows}}
		<tr>
			<td>{{.Type}}</td>
			<td>{{.Date}}</td>
			<td>{{.ModeOfPayment}}</td>
			<td>{{.Unallocated}}</td>
			<td>{{.Paid}}</td>
		</tr>
		{{- end}}
		<tr style="font-weight: bold;">
			<td>Total</td>
			<td></td>
			<td></td>
			<td>{{.TotalUnallocated}}</td>
			<td>{{.TotalPaid}}</td>
		</tr>
	</tbody>
</table>
{{end}}
`))

type headingView struct {
	PartyLabel    string
	PartyCode     string
	CategoryLabel string
	TotalRecords  int64
}

type itemRowView struct {
	ItemCode   string
	ItemName   string
	Qty        string
	PendingQty string
	Rate       string
	Amount     string
}

type itemTableView struct {
	Heading     headingView
	ShowPending bool
	Rows        []itemRowView
	Footer      itemRowView
}

type paymentRequestRowView struct {
	Type             string
	Date             string
	ReferenceDoctype string
	ReferenceName    string
	Amount           string
}

type paymentRequestTableView struct {
	Heading     headingView
	Rows        []paymentRequestRowView
	TotalAmount string
}

type paymentEntryRowView struct {
	Type          string
	Date          string
	ModeOfPayment string
	Unallocated   string
	Paid          string
}

type paymentEntryTableView struct {
	Heading          headingView
	Rows             []paymentEntryRowView
	TotalUnallocated string
	TotalPaid        string
}
