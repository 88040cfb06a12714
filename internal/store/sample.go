package store

import (
	"laborcli/pkg/contracts/domain"
)

// SampleRecords returns the bundled demonstration data set: annual urban and
// rural unemployment observations for five Indian geographies, 2016 through
// 2024. A fresh copy is returned on every call so callers can never mutate
// the seed.
func SampleRecords() []domain.LaborRecord {
	out := make([]domain.LaborRecord, len(sampleRecords))
	copy(out, sampleRecords)
	return out
}

var sampleRecords = []domain.LaborRecord{
	{ID: "1", Date: "2016-01", Geography: "Delhi", Region: domain.RegionUrban, UnemploymentRate: 4.2, Population: 16800000, LaborForce: 8400000, EstimatedUnemployed: 352800},
	{ID: "2", Date: "2016-01", Geography: "Mumbai", Region: domain.RegionUrban, UnemploymentRate: 3.8, Population: 12400000, LaborForce: 6200000, EstimatedUnemployed: 235600},
	{ID: "3", Date: "2016-01", Geography: "Uttar Pradesh", Region: domain.RegionRural, UnemploymentRate: 5.1, Population: 199800000, LaborForce: 99900000, EstimatedUnemployed: 5094900},
	{ID: "4", Date: "2016-01", Geography: "Maharashtra", Region: domain.RegionRural, UnemploymentRate: 4.5, Population: 112400000, LaborForce: 56200000, EstimatedUnemployed: 2529000},
	{ID: "5", Date: "2016-01", Geography: "Tamil Nadu", Region: domain.RegionUrban, UnemploymentRate: 3.9, Population: 72100000, LaborForce: 36050000, EstimatedUnemployed: 1405950},
	{ID: "6", Date: "2017-01", Geography: "Delhi", Region: domain.RegionUrban, UnemploymentRate: 4.5, Population: 16900000, LaborForce: 8450000, EstimatedUnemployed: 380250},
	{ID: "7", Date: "2017-01", Geography: "Mumbai", Region: domain.RegionUrban, UnemploymentRate: 4.1, Population: 12500000, LaborForce: 6250000, EstimatedUnemployed: 256250},
	{ID: "8", Date: "2017-01", Geography: "Uttar Pradesh", Region: domain.RegionRural, UnemploymentRate: 5.3, Population: 200500000, LaborForce: 100250000, EstimatedUnemployed: 5313250},
	{ID: "9", Date: "2017-01", Geography: "Maharashtra", Region: domain.RegionRural, UnemploymentRate: 4.7, Population: 113100000, LaborForce: 56550000, EstimatedUnemployed: 2657850},
	{ID: "10", Date: "2017-01", Geography: "Tamil Nadu", Region: domain.RegionUrban, UnemploymentRate: 4.2, Population: 72500000, LaborForce: 36250000, EstimatedUnemployed: 1522500},
	{ID: "11", Date: "2018-01", Geography: "Delhi", Region: domain.RegionUrban, UnemploymentRate: 5.1, Population: 17000000, LaborForce: 8500000, EstimatedUnemployed: 433500},
	{ID: "12", Date: "2018-01", Geography: "Mumbai", Region: domain.RegionUrban, UnemploymentRate: 4.8, Population: 12600000, LaborForce: 6300000, EstimatedUnemployed: 302400},
	{ID: "13", Date: "2018-01", Geography: "Uttar Pradesh", Region: domain.RegionRural, UnemploymentRate: 5.8, Population: 201200000, LaborForce: 100600000, EstimatedUnemployed: 5834800},
	{ID: "14", Date: "2018-01", Geography: "Maharashtra", Region: domain.RegionRural, UnemploymentRate: 5.2, Population: 113800000, LaborForce: 56900000, EstimatedUnemployed: 2958800},
	{ID: "15", Date: "2018-01", Geography: "Tamil Nadu", Region: domain.RegionUrban, UnemploymentRate: 4.7, Population: 72900000, LaborForce: 36450000, EstimatedUnemployed: 1713150},
	{ID: "16", Date: "2019-01", Geography: "Delhi", Region: domain.RegionUrban, UnemploymentRate: 6.2, Population: 17100000, LaborForce: 8550000, EstimatedUnemployed: 530100},
	{ID: "17", Date: "2019-01", Geography: "Mumbai", Region: domain.RegionUrban, UnemploymentRate: 5.5, Population: 12700000, LaborForce: 6350000, EstimatedUnemployed: 349250},
	{ID: "18", Date: "2019-01", Geography: "Uttar Pradesh", Region: domain.RegionRural, UnemploymentRate: 6.5, Population: 201900000, LaborForce: 100950000, EstimatedUnemployed: 6561750},
	{ID: "19", Date: "2019-01", Geography: "Maharashtra", Region: domain.RegionRural, UnemploymentRate: 5.8, Population: 114500000, LaborForce: 57250000, EstimatedUnemployed: 3320500},
	{ID: "20", Date: "2019-01", Geography: "Tamil Nadu", Region: domain.RegionUrban, UnemploymentRate: 5.3, Population: 73300000, LaborForce: 36650000, EstimatedUnemployed: 1942450},
	{ID: "21", Date: "2020-01", Geography: "Delhi", Region: domain.RegionUrban, UnemploymentRate: 7.8, Population: 17200000, LaborForce: 8600000, EstimatedUnemployed: 670800},
	{ID: "22", Date: "2020-01", Geography: "Mumbai", Region: domain.RegionUrban, UnemploymentRate: 8.2, Population: 12800000, LaborForce: 6400000, EstimatedUnemployed: 524800},
	{ID: "23", Date: "2020-01", Geography: "Uttar Pradesh", Region: domain.RegionRural, UnemploymentRate: 8.9, Population: 202600000, LaborForce: 101300000, EstimatedUnemployed: 9015700},
	{ID: "24", Date: "2020-01", Geography: "Maharashtra", Region: domain.RegionRural, UnemploymentRate: 7.6, Population: 115200000, LaborForce: 57600000, EstimatedUnemployed: 4377600},
	{ID: "25", Date: "2020-01", Geography: "Tamil Nadu", Region: domain.RegionUrban, UnemploymentRate: 6.9, Population: 73700000, LaborForce: 36850000, EstimatedUnemployed: 2542650},
	{ID: "26", Date: "2021-01", Geography: "Delhi", Region: domain.RegionUrban, UnemploymentRate: 9.2, Population: 17300000, LaborForce: 8650000, EstimatedUnemployed: 795800},
	{ID: "27", Date: "2021-01", Geography: "Mumbai", Region: domain.RegionUrban, UnemploymentRate: 9.8, Population: 12900000, LaborForce: 6450000, EstimatedUnemployed: 632100},
	{ID: "28", Date: "2021-01", Geography: "Uttar Pradesh", Region: domain.RegionRural, UnemploymentRate: 10.5, Population: 203300000, LaborForce: 101650000, EstimatedUnemployed: 10673250},
	{ID: "29", Date: "2021-01", Geography: "Maharashtra", Region: domain.RegionRural, UnemploymentRate: 8.9, Population: 115900000, LaborForce: 57950000, EstimatedUnemployed: 5157550},
	{ID: "30", Date: "2021-01", Geography: "Tamil Nadu", Region: domain.RegionUrban, UnemploymentRate: 8.1, Population: 74100000, LaborForce: 37050000, EstimatedUnemployed: 3001050},
	{ID: "31", Date: "2022-01", Geography: "Delhi", Region: domain.RegionUrban, UnemploymentRate: 7.1, Population: 17400000, LaborForce: 8700000, EstimatedUnemployed: 617700},
	{ID: "32", Date: "2022-01", Geography: "Mumbai", Region: domain.RegionUrban, UnemploymentRate: 6.8, Population: 13000000, LaborForce: 6500000, EstimatedUnemployed: 442000},
	{ID: "33", Date: "2022-01", Geography: "Uttar Pradesh", Region: domain.RegionRural, UnemploymentRate: 7.8, Population: 204000000, LaborForce: 102000000, EstimatedUnemployed: 7956000},
	{ID: "34", Date: "2022-01", Geography: "Maharashtra", Region: domain.RegionRural, UnemploymentRate: 6.5, Population: 116600000, LaborForce: 58300000, EstimatedUnemployed: 3789500},
	{ID: "35", Date: "2022-01", Geography: "Tamil Nadu", Region: domain.RegionUrban, UnemploymentRate: 6.2, Population: 74500000, LaborForce: 37250000, EstimatedUnemployed: 2309500},
	{ID: "36", Date: "2023-01", Geography: "Delhi", Region: domain.RegionUrban, UnemploymentRate: 5.8, Population: 17500000, LaborForce: 8750000, EstimatedUnemployed: 507500},
	{ID: "37", Date: "2023-01", Geography: "Mumbai", Region: domain.RegionUrban, UnemploymentRate: 5.2, Population: 13100000, LaborForce: 6550000, EstimatedUnemployed: 340600},
	{ID: "38", Date: "2023-01", Geography: "Uttar Pradesh", Region: domain.RegionRural, UnemploymentRate: 6.9, Population: 204700000, LaborForce: 102350000, EstimatedUnemployed: 7062150},
	{ID: "39", Date: "2023-01", Geography: "Maharashtra", Region: domain.RegionRural, UnemploymentRate: 5.7, Population: 117300000, LaborForce: 58650000, EstimatedUnemployed: 3343050},
	{ID: "40", Date: "2023-01", Geography: "Tamil Nadu", Region: domain.RegionUrban, UnemploymentRate: 5.1, Population: 74900000, LaborForce: 37450000, EstimatedUnemployed: 1909950},
	{ID: "41", Date: "2024-01", Geography: "Delhi", Region: domain.RegionUrban, UnemploymentRate: 4.9, Population: 17600000, LaborForce: 8800000, EstimatedUnemployed: 431200},
	{ID: "42", Date: "2024-01", Geography: "Mumbai", Region: domain.RegionUrban, UnemploymentRate: 4.5, Population: 13200000, LaborForce: 6600000, EstimatedUnemployed: 297000},
	{ID: "43", Date: "2024-01", Geography: "Uttar Pradesh", Region: domain.RegionRural, UnemploymentRate: 6.2, Population: 205400000, LaborForce: 102700000, EstimatedUnemployed: 6367400},
	{ID: "44", Date: "2024-01", Geography: "Maharashtra", Region: domain.RegionRural, UnemploymentRate: 5.1, Population: 118000000, LaborForce: 59000000, EstimatedUnemployed: 3009000},
	{ID: "45", Date: "2024-01", Geography: "Tamil Nadu", Region: domain.RegionUrban, UnemploymentRate: 4.6, Population: 75300000, LaborForce: 37650000, EstimatedUnemployed: 1731900},
}
