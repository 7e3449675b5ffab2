/*
Package station parses the 12306 station list and indexes it in memory.

This package is data-source agnostic. It accepts the raw station_names
script text and builds a read-only Catalog. It does NOT handle HTTP
downloads; see package kyfw for that.

# Basic Usage

	script := fetchStationScriptFromYourSource()

	raw, err := station.ParseStationNames(script)
	if err != nil {
	    log.Fatal(err)
	}
	catalog := station.NewCatalog(station.ParseStationsData(raw, nil))

	ref, ok := catalog.CityStation("北京")
	stops, ok := catalog.CityStations("上海")
	data, ok := catalog.Station("VNP")

# Script Format

The script is a single JavaScript assignment of a quoted literal:

	var station_names ='@bjb|北京北|VAP|beijingbei|bjb|0|0357|北京|||@bjd|...';

ParseStationNames only accepts that exact shape and never evaluates the
content. The literal is a flat '|' list read in groups of ten fields.

# Derived Indices

NewCatalog derives three indices from the base table: stations per city
(catalog order), the canonical station of each city (the station whose name
equals the city) and stations by name. All are built once and never mutated.
*/
package station
