// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line garage client.
//
// Commands work on the resource caches and document builders of
// service.Services:
//
//	list    <kind>                  print the cached rows after a refresh
//	get     <kind> <id>             print one row as JSON
//	create  <kind> -data <json>     insert a row
//	update  <kind> <id> -data <json>
//	delete  <kind> <id>
//	price   -item <line> ...        price lines without writing anything
//	invoice -client <id> -item <line> ...
//	quote   -client <id> -item <line> ...
//	items   invoice|quote <id>      print the lines of a document
//	watch                           refresh every resource periodically
//
// A line is "description;quantity;unit_price[;discount_percent[;tax_rate]]".
// Invoices and quotes are only created by the invoice and quote commands, which
// write the document together with its priced lines.
package client
