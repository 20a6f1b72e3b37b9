// Package chart builds the selectable chart-of-accounts hierarchy from the
// global taxonomy and the tenant's own ledgers.
package chart

import "strings"

// TaxonomyRow is one path in the global chart-of-accounts taxonomy. Levels
// run category, group, sub-groups 1..3, leaf name; an empty level ends the
// path early.
type TaxonomyRow struct {
	Category  string
	Group     string
	SubGroup1 string
	SubGroup2 string
	SubGroup3 string
	Name      string
}

// Path returns the hierarchy levels in order, stopping at the first gap,
// with the leaf name always last. Most rows leave the sub-groups empty.
func (r TaxonomyRow) Path() []string {
	var path []string
	for _, level := range []string{r.Category, r.Group, r.SubGroup1, r.SubGroup2, r.SubGroup3} {
		if strings.TrimSpace(level) == "" {
			break
		}
		path = append(path, level)
	}
	if strings.TrimSpace(r.Name) != "" {
		path = append(path, r.Name)
	}
	return path
}

// DefaultTaxonomy returns the fixed global taxonomy every tenant starts
// from. Tenant ledgers graft onto these paths.
func DefaultTaxonomy() []TaxonomyRow {
	return []TaxonomyRow{
		{Category: "Assets", Group: "Current Assets", SubGroup1: "Cash & Bank", Name: "Cash"},
		{Category: "Assets", Group: "Current Assets", SubGroup1: "Cash & Bank", Name: "Bank Accounts"},
		{Category: "Assets", Group: "Current Assets", SubGroup1: "Receivables", Name: "Sundry Debtors"},
		{Category: "Assets", Group: "Current Assets", SubGroup1: "Inventory", Name: "Stock-in-Hand"},
		{Category: "Assets", Group: "Fixed Assets", Name: "Plant & Machinery"},
		{Category: "Assets", Group: "Fixed Assets", Name: "Furniture & Fixtures"},
		{Category: "Assets", Group: "Investments", Name: "Deposits"},
		{Category: "Liabilities", Group: "Current Liabilities", SubGroup1: "Payables", Name: "Sundry Creditors"},
		{Category: "Liabilities", Group: "Current Liabilities", SubGroup1: "Duties & Taxes", Name: "CGST"},
		{Category: "Liabilities", Group: "Current Liabilities", SubGroup1: "Duties & Taxes", Name: "SGST"},
		{Category: "Liabilities", Group: "Current Liabilities", SubGroup1: "Duties & Taxes", Name: "IGST"},
		{Category: "Liabilities", Group: "Loans", Name: "Secured Loans"},
		{Category: "Liabilities", Group: "Loans", Name: "Unsecured Loans"},
		{Category: "Owner's Funds", Group: "Capital", Name: "Owner's Capital"},
		{Category: "Owner's Funds", Group: "Capital", Name: "Drawings"},
		{Category: "Owner's Funds", Group: "Reserves", Name: "Retained Earnings"},
		{Category: "NPO Funds", Group: "Restricted Funds", Name: "Corpus Fund"},
		{Category: "NPO Funds", Group: "Unrestricted Funds", Name: "General Fund"},
		{Category: "Income", Group: "Direct Income", Name: "Sales"},
		{Category: "Income", Group: "Indirect Income", Name: "Interest Received"},
		{Category: "Income", Group: "Indirect Income", Name: "Discount Received"},
		{Category: "Expenditure", Group: "Direct Expenses", Name: "Purchases"},
		{Category: "Expenditure", Group: "Direct Expenses", Name: "Freight Inward"},
		{Category: "Expenditure", Group: "Indirect Expenses", Name: "Rent"},
		{Category: "Expenditure", Group: "Indirect Expenses", Name: "Salaries"},
		{Category: "Expenditure", Group: "Indirect Expenses", Name: "Electricity"},
		{Category: "Expenditure", Group: "Indirect Expenses", Name: "Bank Charges"},
	}
}
