package auth

// ContractText is the static terms-of-service text every registering
// agent accepts; a copy is stored per agent so later edits to this
// constant never rewrite what an agent actually agreed to.
const ContractText = `📜 شرایط و مقررات استفاده از خدمات سامانه

با ثبت‌نام و استفاده از خدمات این سامانه، کاربران (نمایندگان، مشتریان و ضامنین) متعهد می‌شوند که مفاد زیر را به‌طور کامل مطالعه کرده و پذیرفته‌اند.

۱. تعاریف

شرکت: مالک و بهره‌بردار سامانه.

نماینده: فردی که با قرارداد رسمی با شرکت همکاری می‌کند و وظیفه جذب مشتری و انجام مراحل اولیه پرونده را بر عهده دارد.

مشتری: فردی که متقاضی دریافت تسهیلات بانکی است.

ضامن: شخصی که جهت تضمین بازپرداخت تسهیلات معرفی می‌شود.

سرمایه‌گذار: فردی که امتیاز تسهیلات خود را به شرکت واگذار می‌نماید.

۲. موضوع فعالیت

ایجاد بستر آنلاین جهت معرفی مشتریان به بانک رسالت و پیگیری مراحل دریافت تسهیلات.

تسهیل فرآیند انتقال امتیاز تسهیلات از سرمایه‌گذاران به مشتریان.

ارائه خدمات پشتیبانی، اطلاع‌رسانی و قرارداد آنلاین در سامانه.

۳. تعهدات کاربران

کاربران موظف به ارائه اطلاعات صحیح و کامل در هنگام ثبت‌نام و بارگذاری مدارک هستند.

هرگونه استفاده نادرست از اطلاعات سایر کاربران، پیگرد قانونی خواهد داشت.

مشتریان و ضامنین مکلف‌اند اسناد و مدارک لازم (از جمله چک ضمانت) را طبق مقررات ارائه نمایند.

نمایندگان موظف‌اند مطابق ضوابط شرکت عمل کرده و از سوءاستفاده یا فعالیت خارج از چارچوب خودداری کنند.

۴. تعهدات شرکت

حفظ محرمانگی اطلاعات کاربران.

ایجاد زیرساخت فنی و حقوقی برای ثبت و پیگیری پرونده‌ها.

تسویه حساب کارمزد نمایندگان طبق زمان‌بندی اعلام‌شده.

اطلاع‌رسانی شفاف به مشتریان در خصوص وضعیت پرونده.

۵. کارمزد و هزینه‌ها

هزینه اعتبارسنجی برای هر نفر مبلغ ۲۵۰,۰۰۰ ریال است که توسط مشتری پرداخت می‌شود.

هزینه انتقال امتیاز تسهیلات مطابق نرخ روز محاسبه و به اطلاع مشتری می‌رسد.

نمایندگان کارمزد خود را به‌صورت درصدی از هزینه امتیاز دریافت خواهند کرد.

۶. ضمانت و ریسک‌ها

مسئولیت بازپرداخت اقساط تسهیلات صرفاً بر عهده مشتری و ضامن است.

شرکت در قبال عدم پرداخت اقساط یا نکول مشتری تعهدی ندارد.

به منظور تضمین حسن انجام کار، نماینده موظف به ارائه چک ضمانت به شرکت است.

۷. فسخ و محدودیت

در صورت نقض قوانین سامانه توسط هر کاربر، شرکت حق تعلیق یا قطع دسترسی وی را دارد.

قرارداد نمایندگان در صورت تخلف، یک‌طرفه از سوی شرکت فسخ خواهد شد.

۸. حل اختلاف

در صورت بروز اختلاف، ابتدا موضوع از طریق مذاکره حل‌وفصل می‌شود و در صورت عدم نتیجه، مراجع قضایی جمهوری اسلامی ایران صالح به رسیدگی خواهند بود.

۹. تغییرات

شرکت حق دارد در هر زمان شرایط و مقررات سامانه را تغییر دهد. تغییرات از طریق سایت اطلاع‌رسانی خواهد شد و ادامه استفاده کاربران به منزله پذیرش شرایط جدید است.`
