// Package catalog contains the shipping reference data: methods (named
// service tiers with static pricing) and zones (geographic matching rules
// carrying their own cost parameters). Both are shared reference aggregates;
// shipments reference them by id only, so later catalog edits never change
// historical shipment data.
package catalog
