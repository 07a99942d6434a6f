/* Apache v2 license
 * Copyright (C) 2020 the gtin-validator authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gtin

import "strconv"

// prefixAllowed reports whether the leading digits of the code fall outside
// the reserved and non-assignable GS1 prefix ranges for its length class.
//
// The length class is selected from the code's raw textual form (for the
// integer arm, its decimal rendering), not from the canonical form. GTIN-8
// codes read their prefix from the raw form; GTIN-12/13/14 codes read theirs
// from the 14-wide canonical form. Lengths outside {8, 12, 13, 14} have no
// prefix class and are rejected outright.
func (c Code) prefixAllowed() bool {
	switch len(c.raw) {
	case 8:
		prefix, err := strconv.Atoi(c.raw[:3])
		if err != nil {
			return false
		}
		if (0 <= prefix && prefix <= 99) || (200 <= prefix && prefix <= 299) {
			return false
		}
		return true

	case 12, 13, 14:
		code := c.canonical(validationWidth)
		if code[0] < '0' || code[0] > '8' {
			return false
		}
		prefix, err := strconv.Atoi(code[1:4])
		if err != nil {
			return false
		}
		switch {
		case 20 <= prefix && prefix <= 29,
			40 <= prefix && prefix <= 59,
			200 <= prefix && prefix <= 299,
			960 <= prefix && prefix <= 969,
			980 <= prefix && prefix <= 999:
			return false
		}
		return !reservedPrefixes[prefix]

	default:
		return false
	}
}

// reservedPrefixes marks the 3-digit GS1 prefixes that are reserved or not
// currently assignable and therefore rejected for GTIN-12/13/14 codes, per
// the GS1 US GTIN Validation Guide. Prefixes reserved for future use are
// not marked and remain allowed.
var reservedPrefixes = [1000]bool{
	381: true, 382: true, 384: true, 386: true, 388: true,
	390: true, 391: true, 392: true, 393: true, 394: true,
	395: true, 396: true, 397: true, 398: true, 399: true,

	441: true, 442: true, 443: true, 444: true, 445: true,
	446: true, 447: true, 448: true, 449: true,
	472: true, 473: true,

	510: true, 511: true, 512: true, 513: true, 514: true,
	515: true, 516: true, 517: true, 518: true, 519: true,
	522: true, 523: true, 524: true, 525: true, 526: true,
	527: true,
	532: true, 533: true, 534: true,
	536: true, 537: true, 538: true,
	550: true, 551: true, 552: true, 553: true, 554: true,
	555: true, 556: true, 557: true, 558: true, 559: true,
	561: true, 562: true, 563: true, 564: true, 565: true,
	566: true, 567: true, 568: true,
	580: true, 581: true, 582: true, 583: true, 584: true,
	585: true, 586: true, 587: true, 588: true, 589: true,
	591: true, 592: true, 593: true,
	595: true, 596: true, 597: true, 598: true,

	602: true,
	605: true, 606: true, 607: true,
	610: true, 612: true, 614: true, 617: true,
	630: true, 631: true, 632: true, 633: true, 634: true,
	635: true, 636: true, 637: true, 638: true, 639: true,
	650: true, 651: true, 652: true, 653: true, 654: true,
	655: true, 656: true, 657: true, 658: true, 659: true,
	660: true, 661: true, 662: true, 663: true, 664: true,
	665: true, 666: true, 667: true, 668: true, 669: true,
	670: true, 671: true, 672: true, 673: true, 674: true,
	675: true, 676: true, 677: true, 678: true, 679: true,
	680: true, 681: true, 682: true, 683: true, 684: true,
	685: true, 686: true, 687: true, 688: true, 689: true,

	710: true, 711: true, 712: true, 713: true, 714: true,
	715: true, 716: true, 717: true, 718: true, 719: true,
	720: true, 721: true, 722: true, 723: true, 724: true,
	725: true, 726: true, 727: true, 728: true,
	747: true, 748: true, 749: true,
	751: true, 752: true, 753: true,
	756: true, 757: true, 758: true,
	772: true, 774: true, 776: true,
	781: true, 782: true, 783: true,
	785: true, 787: true, 788: true,
	791: true, 792: true, 793: true, 794: true, 795: true,
	796: true, 797: true, 798: true, 799: true,

	851: true, 852: true, 853: true, 854: true, 855: true,
	856: true, 857: true,
	861: true, 862: true, 863: true, 864: true,
	866: true,
	881: true, 882: true, 883: true,
	886: true, 887: true, 889: true,
	891: true, 892: true,
	894: true, 895: true,
	897: true, 898: true,

	920: true, 921: true, 922: true, 923: true, 924: true,
	925: true, 926: true, 927: true, 928: true, 929: true,
}
